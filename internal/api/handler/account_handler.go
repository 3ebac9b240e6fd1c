package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/request-management/request-system/internal/core/ports"
)

type AccountHandler struct {
	*CrudHandler[ports.AccountData]
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{
		CrudHandler: NewCrudHandler[ports.AccountData](service, "id"),
		service:     service,
	}
}

// Create godoc
// @Summary Create an account
// @Description Admin-only creation. Unlike sign-up, any role including admin may be assigned.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body createAccountRequest true "Account to create"
// @Success 201 {object} envelope
// @Failure 409 {object} envelope
// @Security BearerAuth
// @Router /v1/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dto, err := req.toData()
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), dto)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, msgCreated, created)
}

// Update godoc
// @Summary Update an account
// @Description Accounts may update themselves; admins may update anyone. Empty fields keep their stored value.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account id"
// @Param account body updateAccountRequest true "Fields to update"
// @Success 200 {object} envelope
// @Failure 403 {object} envelope
// @Security BearerAuth
// @Router /v1/accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dto, err := req.toData()
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, dto, actor)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, msgUpdated, updated)
}

// Delete godoc
// @Summary Delete an account
// @Description Accounts may delete themselves; admins may delete anyone. Fails while the account still owns requests.
// @Tags accounts
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Security BearerAuth
// @Router /v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, actor); err != nil {
		return err
	}

	return respond(c, http.StatusOK, msgDeleted, nil)
}
