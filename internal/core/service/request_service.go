package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

// RequestService layers ownership rules and the approval state machine on the
// generic CRUD engine.
type RequestService struct {
	*CrudService[ports.RequestData, domain.Request]
	repo   ports.RequestRepository
	audit  ports.AuditRepository
	logger zerolog.Logger
}

func NewRequestService(
	repo ports.RequestRepository,
	mapper ports.Mapper[ports.RequestData, domain.Request],
	audit ports.AuditRepository,
	logger zerolog.Logger,
) *RequestService {
	return &RequestService{
		CrudService: NewCrudService[ports.RequestData, domain.Request](repo, mapper),
		repo:        repo,
		audit:       audit,
		logger:      logger,
	}
}

// Create persists a new request owned by the caller. Whatever the caller
// submitted for status, reason or owner is discarded: a new request always
// starts in created status, with no reason, owned by the authenticated
// identity, stamped with the current time.
func (s *RequestService) Create(ctx context.Context, dto *ports.RequestData, actor ports.Identity) (*ports.RequestData, error) {
	if !domain.ValidRequestType(dto.Type) {
		return nil, domain.ErrInvalidRequestType
	}

	dto.ID = 0
	dto.Status = domain.StatusCreated
	dto.DisapproveReason = ""
	dto.OwnerID = actor.AccountID
	dto.RequestedAt = time.Now().UTC()

	created, err := s.CrudService.Create(ctx, dto)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", created.ID).Int64("owner_id", created.OwnerID).Str("type", string(created.Type)).Msg("request created")
	return created, nil
}

// Update applies overwrite-by-id semantics with carry-forward rules. Authors
// may only touch their own requests and only while still in created status;
// admins are unrestricted. Request date, owner and status always carry over
// from the stored record, and the stored reason survives only on requests
// already unapproved.
func (s *RequestService) Update(ctx context.Context, id int64, dto *ports.RequestData, actor ports.Identity) (*ports.RequestData, error) {
	found, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleAuthor {
		if found.Status != domain.StatusCreated {
			return nil, domain.ErrRequestClosed
		}
		if found.OwnerID != actor.AccountID {
			return nil, domain.ErrForbidden
		}
	}

	dto.ID = id
	dto.RequestedAt = found.RequestedAt
	dto.OwnerID = found.OwnerID
	dto.Status = found.Status
	if found.Status == domain.StatusUnapproved {
		dto.DisapproveReason = found.DisapproveReason
	} else {
		dto.DisapproveReason = ""
	}

	if dto.Area == "" {
		dto.Area = found.Area
	}
	if dto.Type == "" {
		dto.Type = found.Type
	}
	if dto.Workload == 0 {
		dto.Workload = found.Workload
	}
	if dto.TotalCost == 0 {
		dto.TotalCost = found.TotalCost
	}

	return s.CrudService.Update(ctx, id, dto)
}

// Delete removes a request. Authors may only delete their own requests while
// still in created status; admins are unrestricted.
func (s *RequestService) Delete(ctx context.Context, id int64, actor ports.Identity) error {
	found, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if actor.Role == domain.RoleAuthor {
		if found.Status != domain.StatusCreated {
			return domain.ErrRequestClosed
		}
		if found.OwnerID != actor.AccountID {
			return domain.ErrForbidden
		}
	}

	return s.CrudService.Delete(ctx, id)
}

// Approve transitions a request from created to approved. Requests already in
// a terminal status fail with the matching already-* error and are left
// untouched.
func (s *RequestService) Approve(ctx context.Context, id int64, actor ports.Identity) (*ports.RequestData, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch entity.Status {
	case domain.StatusUnapproved:
		return nil, domain.ErrAlreadyUnapproved
	case domain.StatusApproved:
		return nil, domain.ErrAlreadyApproved
	}

	from := entity.Status
	entity.Status = domain.StatusApproved
	entity.DisapproveReason = ""

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.recordChange(ctx, id, from, domain.StatusApproved, "", actor)
	s.logger.Info().Int64("request_id", id).Int64("actor_id", actor.AccountID).Msg("request approved")

	return s.mapper.ToDTO(saved), nil
}

// Disapprove transitions a request from created to unapproved, storing the
// reason verbatim. A blank reason is rejected before any lookup, so it fails
// first even against a missing or already-closed request.
func (s *RequestService) Disapprove(ctx context.Context, id int64, reason string, actor ports.Identity) (*ports.RequestData, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrEmptyReason
	}

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch entity.Status {
	case domain.StatusUnapproved:
		return nil, domain.ErrAlreadyUnapproved
	case domain.StatusApproved:
		return nil, domain.ErrAlreadyApproved
	}

	from := entity.Status
	entity.Status = domain.StatusUnapproved
	entity.DisapproveReason = reason

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.recordChange(ctx, id, from, domain.StatusUnapproved, reason, actor)
	s.logger.Info().Int64("request_id", id).Int64("actor_id", actor.AccountID).Msg("request disapproved")

	return s.mapper.ToDTO(saved), nil
}

// ListByOwner returns the caller's own requests, sorted.
func (s *RequestService) ListByOwner(ctx context.Context, ownerID int64, direction ports.SortDirection, property string) ([]ports.RequestData, error) {
	entities, err := s.repo.FindAllByOwner(ctx, ownerID, direction, property)
	if err != nil {
		return nil, err
	}

	dtos := make([]ports.RequestData, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *s.mapper.ToDTO(&entities[i]))
	}
	return dtos, nil
}

// recordChange appends to the audit trail. Failures are logged, not surfaced:
// the transition itself has already been persisted.
func (s *RequestService) recordChange(ctx context.Context, id int64, from, to domain.RequestStatus, reason string, actor ports.Identity) {
	change := &domain.StatusChange{
		RequestID: id,
		From:      from,
		To:        to,
		Reason:    reason,
		ActorID:   actor.AccountID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.audit.InsertStatusChange(ctx, change); err != nil {
		s.logger.Warn().Err(err).Int64("request_id", id).Msg("failed to record status change")
	}
}
