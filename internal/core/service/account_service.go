package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

// AccountService layers national-id normalization, credential hashing and
// the self-or-admin authorization rules on the generic CRUD engine.
type AccountService struct {
	*CrudService[ports.AccountData, domain.Account]
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewAccountService(
	repo ports.AccountRepository,
	mapper ports.Mapper[ports.AccountData, domain.Account],
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		CrudService: NewCrudService[ports.AccountData, domain.Account](repo, mapper),
		hasher:      hasher,
		logger:      logger,
	}
}

// Create validates and normalizes the national id, hashes the submitted
// password, and persists the account. Uniqueness violations surface from the
// repository as field-tagged duplicate errors.
func (s *AccountService) Create(ctx context.Context, dto *ports.AccountData) (*ports.AccountData, error) {
	canonical, err := domain.NormalizeNationalID(dto.NationalID)
	if err != nil {
		return nil, err
	}
	dto.NationalID = canonical

	if dto.Gender != "" && !domain.ValidGender(dto.Gender) {
		return nil, domain.ErrInvalidGender
	}

	if dto.Password != "" {
		digest, err := s.hasher.Hash(dto.Password)
		if err != nil {
			return nil, err
		}
		dto.Password = digest
	}

	now := time.Now().UTC()
	dto.ID = 0
	dto.CreatedAt = now
	dto.UpdatedAt = now

	created, err := s.CrudService.Create(ctx, dto)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", created.ID).Str("username", created.Username).Str("role", created.Role).Msg("account created")
	return created, nil
}

// Update applies overwrite-by-id semantics with carry-forward rules: national
// id and registration number never change after creation, role changes require
// an admin caller, and empty optional fields keep their stored values. Only
// the account itself or an admin may update.
func (s *AccountService) Update(ctx context.Context, id int64, dto *ports.AccountData, actor ports.Identity) (*ports.AccountData, error) {
	if actor.AccountID != id && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	found, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	dto.ID = id
	dto.NationalID = found.NationalID
	dto.RegistrationNumber = found.RegistrationNumber

	switch {
	case dto.Role == "" || dto.Role == found.Role:
		dto.Role = found.Role
	case actor.Role != domain.RoleAdmin:
		return nil, domain.ErrRoleImmutable
	}

	if dto.Username == "" {
		dto.Username = found.Username
	}
	if dto.Email == "" {
		dto.Email = found.Email
	}
	if dto.Name == "" {
		dto.Name = found.Name
	}
	if dto.Gender == "" {
		dto.Gender = found.Gender
	}
	if dto.BirthDate.IsZero() {
		dto.BirthDate = found.BirthDate
	}

	if dto.Password == "" {
		dto.Password = found.Password
	} else {
		digest, err := s.hasher.Hash(dto.Password)
		if err != nil {
			return nil, err
		}
		dto.Password = digest
	}

	dto.CreatedAt = found.CreatedAt
	dto.UpdatedAt = time.Now().UTC()

	return s.CrudService.Update(ctx, id, dto)
}

// Delete removes an account. Only the account itself or an admin may delete,
// and the repository rejects the deletion while the account still owns
// requests.
func (s *AccountService) Delete(ctx context.Context, id int64, actor ports.Identity) error {
	if actor.AccountID != id && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.CrudService.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("account_id", id).Int64("actor_id", actor.AccountID).Msg("account deleted")
	return nil
}
