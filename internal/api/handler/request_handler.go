package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/request-management/request-system/internal/api/metrics"
	"github.com/request-management/request-system/internal/core/ports"
	"github.com/rs/zerolog"
)

// IdempotencyStore remembers which request id an idempotency key already
// produced, so retried submissions replay the stored result.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, requestID int64) error
}

type RequestHandler struct {
	*CrudHandler[ports.RequestData]
	service     ports.RequestService
	idempotency IdempotencyStore
	logger      zerolog.Logger
}

func NewRequestHandler(service ports.RequestService, idempotency IdempotencyStore, logger zerolog.Logger) *RequestHandler {
	return &RequestHandler{
		CrudHandler: NewCrudHandler[ports.RequestData](service, "requested_at"),
		service:     service,
		idempotency: idempotency,
		logger:      logger,
	}
}

// Create godoc
// @Summary Submit a request
// @Description Creates a request owned by the caller in the created state. An optional Idempotency-Key header makes retries safe.
// @Tags requests
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-chosen retry key"
// @Param request body createRequestRequest true "Request to submit"
// @Success 201 {object} envelope
// @Security BearerAuth
// @Router /v1/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	key := c.Request().Header.Get("Idempotency-Key")

	if key != "" && h.idempotency != nil {
		if id, found, err := h.idempotency.Lookup(ctx, key); err != nil {
			h.logger.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
		} else if found {
			existing, err := h.service.Find(ctx, id)
			if err == nil {
				return respond(c, http.StatusOK, msgReplayed, existing)
			}
			h.logger.Warn().Err(err).Int64("request_id", id).Msg("idempotent replay target missing")
		}
	}

	created, err := h.service.Create(ctx, req.toData(), actor)
	if err != nil {
		return err
	}
	metrics.RequestsCreatedTotal.WithLabelValues(string(created.Type)).Inc()

	if key != "" && h.idempotency != nil {
		if err := h.idempotency.Remember(ctx, key, created.ID); err != nil {
			h.logger.Warn().Err(err).Str("key", key).Msg("idempotency store failed")
		}
	}

	return respond(c, http.StatusCreated, msgCreated, created)
}

// Update godoc
// @Summary Update a request
// @Description Authors may update their own requests while still open; admins may update any request. Zero fields keep their stored value.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request id"
// @Param request body updateRequestRequest true "Fields to update"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Security BearerAuth
// @Router /v1/requests/{id} [put]
func (h *RequestHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), id, req.toData(), actor)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, msgUpdated, updated)
}

// Delete godoc
// @Summary Delete a request
// @Description Authors may delete their own open requests; admins may delete any request.
// @Tags requests
// @Produce json
// @Param id path int true "Request id"
// @Success 200 {object} envelope
// @Failure 403 {object} envelope
// @Security BearerAuth
// @Router /v1/requests/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
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

// Approve godoc
// @Summary Approve a request
// @Tags requests
// @Produce json
// @Param id path int true "Request id"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Security BearerAuth
// @Router /v1/requests/approve/{id} [put]
func (h *RequestHandler) Approve(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	approved, err := h.service.Approve(c.Request().Context(), id, actor)
	if err != nil {
		return err
	}
	metrics.RequestsApprovedTotal.Inc()

	return respond(c, http.StatusOK, msgApproved, approved)
}

// Disapprove godoc
// @Summary Disapprove a request
// @Description Rejects a request with a mandatory reason.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request id"
// @Param body body disapproveRequest true "Disapproval reason"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Security BearerAuth
// @Router /v1/requests/disapprove/{id} [put]
func (h *RequestHandler) Disapprove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req disapproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	disapproved, err := h.service.Disapprove(c.Request().Context(), id, req.Reason, actor)
	if err != nil {
		return err
	}
	metrics.RequestsDisapprovedTotal.Inc()

	return respond(c, http.StatusOK, msgDisapproved, disapproved)
}

// MyRequests godoc
// @Summary List the caller's requests
// @Tags requests
// @Produce json
// @Param direction query string false "Sort direction (asc or desc)"
// @Param property query string false "Sort property"
// @Success 200 {object} envelope
// @Security BearerAuth
// @Router /v1/requests/my-requests [get]
func (h *RequestHandler) MyRequests(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dir, property := sortParams(c, "requested_at")
	items, err := h.service.ListByOwner(c.Request().Context(), actor.AccountID, ports.ParseSortDirection(dir), property)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, msgRetrieved, items)
}
