package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/request-management/request-system/internal/api/metrics"
	"github.com/request-management/request-system/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate an account
// @Description Accepts a national id (bare or punctuated), email, or username plus a password and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} envelope
// @Failure 401 {object} envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Auth, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return respond(c, http.StatusOK, msgLoggedIn, loginResponse{
		Token:   result.Token,
		Account: &result.Account,
	})
}

// Register godoc
// @Summary Register a new account
// @Description Self-registration. The admin role cannot be requested here.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body registerRequest true "Account to register"
// @Success 201 {object} envelope
// @Failure 409 {object} envelope
// @Router /auth/sign-up [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return err
	}

	account, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:           req.Username,
		NationalID:         req.NationalID,
		Email:              req.Email,
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Password:           req.Password,
		BirthDate:          birthDate,
		Gender:             req.Gender,
		Role:               req.Role,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	return respond(c, http.StatusCreated, msgRegistered, account)
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, so logout performs no server-side work and always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return respond(c, http.StatusOK, msgLoggedOut, nil)
}
