package mapper

import (
	"testing"
	"time"

	"github.com/request-management/request-system/internal/core/domain"
)

func fullRequest() *domain.Request {
	return &domain.Request{
		ID:               7,
		Area:             "engineering",
		Type:             domain.TypeCertification,
		Workload:         40,
		TotalCost:        1500.50,
		Status:           domain.StatusUnapproved,
		RequestedAt:      time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		OwnerID:          10,
		DisapproveReason: "missing cost breakdown",
	}
}

func TestRequestMapper_EntityRoundTrip(t *testing.T) {
	m := NewRequestMapper()
	entity := fullRequest()

	back := m.ToEntity(m.ToDTO(entity))
	if *back != *entity {
		t.Fatalf("round trip lost fields:\n got %+v\nwant %+v", *back, *entity)
	}
}

func TestRequestMapper_DTORoundTrip(t *testing.T) {
	m := NewRequestMapper()
	dto := m.ToDTO(fullRequest())

	back := m.ToDTO(m.ToEntity(dto))
	if *back != *dto {
		t.Fatalf("round trip lost fields:\n got %+v\nwant %+v", *back, *dto)
	}
}

func TestRequestMapper_FieldPreservation(t *testing.T) {
	m := NewRequestMapper()
	entity := fullRequest()
	dto := m.ToDTO(entity)

	if dto.ID != entity.ID || dto.Area != entity.Area || dto.Type != entity.Type {
		t.Fatalf("identity fields mangled: %+v", dto)
	}
	if dto.Workload != entity.Workload || dto.TotalCost != entity.TotalCost {
		t.Fatalf("numeric fields mangled: %+v", dto)
	}
	if dto.Status != entity.Status || dto.DisapproveReason != entity.DisapproveReason {
		t.Fatalf("lifecycle fields mangled: %+v", dto)
	}
	if !dto.RequestedAt.Equal(entity.RequestedAt) || dto.OwnerID != entity.OwnerID {
		t.Fatalf("ownership fields mangled: %+v", dto)
	}
}

func TestRequestMapper_Nil(t *testing.T) {
	m := NewRequestMapper()

	if got := m.ToDTO(nil); got != nil {
		t.Fatalf("expected nil DTO, got %+v", got)
	}
	if got := m.ToEntity(nil); got != nil {
		t.Fatalf("expected nil entity, got %+v", got)
	}
}
