package domain

import "errors"

// Identity and credential errors.
var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("user or password doesn't match")
	ErrForbidden          = errors.New("you don't have permission to do that")

	// Login lookups are tagged with the identifier kind that was attempted so
	// the caller gets a distinct message per kind.
	ErrNoAccountWithNationalID = errors.New("no account found with the passed national id")
	ErrNoAccountWithEmail      = errors.New("no account found with the passed email")
	ErrNoAccountWithUsername   = errors.New("no account found with the passed username")

	ErrPrivilegeEscalation = errors.New("accounts of role admin cannot be self-registered")
)

// Validation errors.
var (
	ErrInvalidNationalID  = errors.New("invalid national id")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidGender      = errors.New("invalid gender")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrEmptyReason        = errors.New("disapprove reason cannot be empty")
	ErrRoleImmutable      = errors.New("role can only be changed by an admin")
)

// Not-found and sorting errors.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrPropertyNotFound = errors.New("unknown sort property")
)

// Conflict errors: duplicate unique fields, dangling references, and invalid
// lifecycle transitions.
var (
	ErrDuplicateUsername   = errors.New("username already in use")
	ErrDuplicateNationalID = errors.New("national id already in use")
	ErrDuplicateEmail      = errors.New("email already in use")

	ErrAccountInUse = errors.New("account still owns requests, delete or reassign them first")

	ErrAlreadyApproved   = errors.New("request already approved")
	ErrAlreadyUnapproved = errors.New("request already unapproved")
	ErrRequestClosed     = errors.New("request already closed")
)
