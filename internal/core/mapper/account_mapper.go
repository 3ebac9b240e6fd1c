// Package mapper holds the pure, side-effect-free conversions between the
// wire-facing DTOs in ports and the persisted entities in domain. Mappers
// never fail and preserve every scalar field in both directions.
package mapper

import (
	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

// AccountMapper converts between ports.AccountData and domain.Account.
// The DTO Password field carries the credential digest.
type AccountMapper struct{}

func NewAccountMapper() AccountMapper {
	return AccountMapper{}
}

func (AccountMapper) ToDTO(e *domain.Account) *ports.AccountData {
	if e == nil {
		return nil
	}
	return &ports.AccountData{
		ID:                 e.ID,
		Username:           e.Username,
		NationalID:         e.NationalID,
		Email:              e.Email,
		Password:           e.PasswordHash,
		Role:               e.Role,
		Name:               e.Name,
		BirthDate:          e.BirthDate,
		Gender:             e.Gender,
		RegistrationNumber: e.RegistrationNumber,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (AccountMapper) ToEntity(d *ports.AccountData) *domain.Account {
	if d == nil {
		return nil
	}
	return &domain.Account{
		ID:                 d.ID,
		Username:           d.Username,
		NationalID:         d.NationalID,
		Email:              d.Email,
		PasswordHash:       d.Password,
		Role:               d.Role,
		Name:               d.Name,
		BirthDate:          d.BirthDate,
		Gender:             d.Gender,
		RegistrationNumber: d.RegistrationNumber,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
