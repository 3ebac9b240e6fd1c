package domain

import "time"

// Roles an account can hold. Role decides which operations the owner of a
// token may perform; it is persisted on the account and carried in the token.
const (
	RoleAdmin    = "admin"
	RoleAuthor   = "author"
	RoleReviewer = "reviewer"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAuthor, RoleReviewer:
		return true
	}
	return false
}

// Gender values accepted on account profiles.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// ValidGender reports whether gender is one of the known values.
func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Account models a member of the organization. Username, NationalID and Email
// are globally unique; NationalID is always stored in its canonical punctuated
// form. PasswordHash is never serialized.
type Account struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	NationalID         string    `json:"national_id"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Role               string    `json:"role"`
	Name               string    `json:"name"`
	BirthDate          time.Time `json:"birth_date"`
	Gender             string    `json:"gender,omitempty"`
	RegistrationNumber string    `json:"registration_number"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
