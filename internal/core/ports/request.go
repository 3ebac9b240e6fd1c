package ports

import (
	"context"
	"time"

	"github.com/request-management/request-system/internal/core/domain"
)

// RequestData is the wire-facing shape of a funding request.
type RequestData struct {
	ID               int64                `json:"id"`
	Area             string               `json:"area"`
	Type             domain.RequestType   `json:"request_type"`
	Workload         int                  `json:"workload"`
	TotalCost        float64              `json:"total_cost"`
	Status           domain.RequestStatus `json:"status"`
	RequestedAt      time.Time            `json:"requested_at"`
	OwnerID          int64                `json:"owner_id"`
	DisapproveReason string               `json:"disapprove_reason,omitempty"`
}

// SetID lets the generic CRUD engine stamp the target id on update.
func (d *RequestData) SetID(id int64) { d.ID = id }

// RequestRepository extends the generic repository with the owner-scoped
// listing used by "my requests".
type RequestRepository interface {
	Repository[domain.Request]
	FindAllByOwner(ctx context.Context, ownerID int64, direction SortDirection, field string) ([]domain.Request, error)
}

// AuditRepository records lifecycle transitions. Write failures are non-fatal
// for the operation that produced the transition.
type AuditRepository interface {
	InsertStatusChange(ctx context.Context, change *domain.StatusChange) error
}

// RequestService defines use-case operations for requests, including the
// approval state machine. Operations that depend on ownership or role take
// the caller identity explicitly.
type RequestService interface {
	Find(ctx context.Context, id int64) (*RequestData, error)
	List(ctx context.Context, direction SortDirection, property string) ([]RequestData, error)
	Create(ctx context.Context, dto *RequestData, actor Identity) (*RequestData, error)
	Update(ctx context.Context, id int64, dto *RequestData, actor Identity) (*RequestData, error)
	Delete(ctx context.Context, id int64, actor Identity) error
	Approve(ctx context.Context, id int64, actor Identity) (*RequestData, error)
	Disapprove(ctx context.Context, id int64, reason string, actor Identity) (*RequestData, error)
	ListByOwner(ctx context.Context, ownerID int64, direction SortDirection, property string) ([]RequestData, error)
}
