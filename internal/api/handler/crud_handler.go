package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/request-management/request-system/internal/core/ports"
)

// crudReader is the subset of the generic CRUD surface shared verbatim by
// every resource. Operations with resource-specific authorization or payload
// shaping live on the resource handlers instead.
type crudReader[D any] interface {
	Find(ctx context.Context, id int64) (*D, error)
	List(ctx context.Context, direction ports.SortDirection, property string) ([]D, error)
}

// CrudHandler turns the generic read operations into echo handlers. Resource
// handlers embed it; route-level RBAC decides who may call them.
type CrudHandler[D any] struct {
	service     crudReader[D]
	defaultSort string
}

func NewCrudHandler[D any](service crudReader[D], defaultSort string) *CrudHandler[D] {
	if defaultSort == "" {
		defaultSort = "id"
	}
	return &CrudHandler[D]{service: service, defaultSort: defaultSort}
}

// GetByID handles GET /:id for the resource.
func (h *CrudHandler[D]) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	dto, err := h.service.Find(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, msgRetrieved, dto)
}

// List handles GET / for the resource, sorted by the direction and property
// query parameters.
func (h *CrudHandler[D]) List(c echo.Context) error {
	dir, property := sortParams(c, h.defaultSort)

	items, err := h.service.List(c.Request().Context(), ports.ParseSortDirection(dir), property)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, msgRetrieved, items)
}
