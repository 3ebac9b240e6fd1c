package handler

import "github.com/request-management/request-system/internal/core/ports"

// loginRequest carries the login identifier and password. The identifier may
// be a national id (bare or punctuated), an email, or a username.
type loginRequest struct {
	Auth     string `json:"auth"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username           string `json:"username"            validate:"required"`
	NationalID         string `json:"national_id"         validate:"required"`
	Email              string `json:"email"               validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Name               string `json:"name"                validate:"required"`
	Password           string `json:"password"            validate:"required,min=6"`
	BirthDate          string `json:"birth_date"          validate:"required"`
	Gender             string `json:"gender"              validate:"omitempty,oneof=male female other"`
	Role               string `json:"role"                validate:"required,oneof=admin author reviewer"`
}

type loginResponse struct {
	Token   string             `json:"token"`
	Account *ports.AccountData `json:"account"`
}
