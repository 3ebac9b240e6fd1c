package mapper

import (
	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

// RequestMapper converts between ports.RequestData and domain.Request.
type RequestMapper struct{}

func NewRequestMapper() RequestMapper {
	return RequestMapper{}
}

func (RequestMapper) ToDTO(e *domain.Request) *ports.RequestData {
	if e == nil {
		return nil
	}
	return &ports.RequestData{
		ID:               e.ID,
		Area:             e.Area,
		Type:             e.Type,
		Workload:         e.Workload,
		TotalCost:        e.TotalCost,
		Status:           e.Status,
		RequestedAt:      e.RequestedAt,
		OwnerID:          e.OwnerID,
		DisapproveReason: e.DisapproveReason,
	}
}

func (RequestMapper) ToEntity(d *ports.RequestData) *domain.Request {
	if d == nil {
		return nil
	}
	return &domain.Request{
		ID:               d.ID,
		Area:             d.Area,
		Type:             d.Type,
		Workload:         d.Workload,
		TotalCost:        d.TotalCost,
		Status:           d.Status,
		RequestedAt:      d.RequestedAt,
		OwnerID:          d.OwnerID,
		DisapproveReason: d.DisapproveReason,
	}
}
