package ports

import (
	"context"
	"time"

	"github.com/request-management/request-system/internal/core/domain"
)

// AccountData is the wire-facing shape of an account. Password carries the
// credential digest when mapped from an entity; transport handlers never
// serialize it back to callers.
type AccountData struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	NationalID         string    `json:"national_id"`
	Email              string    `json:"email"`
	Password           string    `json:"-"`
	Role               string    `json:"role"`
	Name               string    `json:"name"`
	BirthDate          time.Time `json:"birth_date"`
	Gender             string    `json:"gender,omitempty"`
	RegistrationNumber string    `json:"registration_number"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SetID lets the generic CRUD engine stamp the target id on update.
func (d *AccountData) SetID(id int64) { d.ID = id }

// AccountRepository extends the generic repository with the unique-field
// lookups login needs.
type AccountRepository interface {
	Repository[domain.Account]
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByNationalID(ctx context.Context, nationalID string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// AccountService defines use-case operations for accounts. Update and Delete
// take the caller identity: an account may always target itself, admins may
// target anyone, everything else is forbidden.
type AccountService interface {
	Find(ctx context.Context, id int64) (*AccountData, error)
	List(ctx context.Context, direction SortDirection, property string) ([]AccountData, error)
	Create(ctx context.Context, dto *AccountData) (*AccountData, error)
	Update(ctx context.Context, id int64, dto *AccountData, actor Identity) (*AccountData, error)
	Delete(ctx context.Context, id int64, actor Identity) error
}
