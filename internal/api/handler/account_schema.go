package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/request-management/request-system/internal/core/ports"
)

const birthDateLayout = "2006-01-02"

type createAccountRequest struct {
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

// updateAccountRequest leaves every field optional: empty values mean
// "keep the stored value". National id and registration number are not
// bound at all because they can never change after creation.
type updateAccountRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"   validate:"omitempty,min=6"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"     validate:"omitempty,oneof=male female other"`
	Role      string `json:"role"       validate:"omitempty,oneof=admin author reviewer"`
}

func parseBirthDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "birth_date must use the YYYY-MM-DD format")
	}
	return t, nil
}

func (r *createAccountRequest) toData() (*ports.AccountData, error) {
	birthDate, err := parseBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}

	return &ports.AccountData{
		Username:           r.Username,
		NationalID:         r.NationalID,
		Email:              r.Email,
		RegistrationNumber: r.RegistrationNumber,
		Name:               r.Name,
		Password:           r.Password,
		BirthDate:          birthDate,
		Gender:             r.Gender,
		Role:               r.Role,
	}, nil
}

func (r *updateAccountRequest) toData() (*ports.AccountData, error) {
	birthDate, err := parseBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}

	return &ports.AccountData{
		Username:  r.Username,
		Email:     r.Email,
		Name:      r.Name,
		Password:  r.Password,
		BirthDate: birthDate,
		Gender:    r.Gender,
		Role:      r.Role,
	}, nil
}
