package ports

import (
	"context"
	"time"
)

// RegisterInput carries all data needed to create a new account through
// self-registration.
type RegisterInput struct {
	Username           string
	NationalID         string
	Email              string
	RegistrationNumber string
	Name               string
	Password           string
	BirthDate          time.Time
	Gender             string
	Role               string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Account AccountData
	Token   string
}

// AuthService resolves login identifiers to accounts and turns registration
// requests into accounts.
type AuthService interface {
	// Login accepts a national id (bare or punctuated), an email, or a
	// username as identifier, in that order of classification.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*AccountData, error)
}
