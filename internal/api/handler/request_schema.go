package handler

import (
	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

type createRequestRequest struct {
	Area        string  `json:"area"         validate:"required"`
	RequestType string  `json:"request_type" validate:"required,oneof=degree certification training other"`
	Workload    int     `json:"workload"     validate:"required,gt=0"`
	TotalCost   float64 `json:"total_cost"   validate:"required,gt=0"`
}

// updateRequestRequest leaves every field optional: zero values mean
// "keep the stored value".
type updateRequestRequest struct {
	Area        string  `json:"area"`
	RequestType string  `json:"request_type" validate:"omitempty,oneof=degree certification training other"`
	Workload    int     `json:"workload"     validate:"omitempty,gt=0"`
	TotalCost   float64 `json:"total_cost"   validate:"omitempty,gt=0"`
}

// disapproveRequest deliberately carries no validate tag on the reason so
// an empty value reaches the service and maps to a domain error there.
type disapproveRequest struct {
	Reason string `json:"reason"`
}

func (r *createRequestRequest) toData() *ports.RequestData {
	return &ports.RequestData{
		Area:      r.Area,
		Type:      domain.RequestType(r.RequestType),
		Workload:  r.Workload,
		TotalCost: r.TotalCost,
	}
}

func (r *updateRequestRequest) toData() *ports.RequestData {
	return &ports.RequestData{
		Area:      r.Area,
		Type:      domain.RequestType(r.RequestType),
		Workload:  r.Workload,
		TotalCost: r.TotalCost,
	}
}
