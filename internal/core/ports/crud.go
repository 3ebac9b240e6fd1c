package ports

import "context"

// SortDirection is the order applied to list operations.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection maps a query-string value to a SortDirection.
// Unknown or empty values default to ascending.
func ParseSortDirection(s string) SortDirection {
	if s == string(SortDesc) || s == "DESC" || s == "desc" {
		return SortDesc
	}
	return SortAsc
}

// Repository defines the persistence operations every resource needs,
// parametrized over the persisted entity type. Keys are 64-bit integer ids.
type Repository[E any] interface {
	// FindByID fails with the resource's not-found error when id is absent.
	FindByID(ctx context.Context, id int64) (*E, error)
	// FindAllSorted fails with domain.ErrPropertyNotFound for an unknown field.
	FindAllSorted(ctx context.Context, direction SortDirection, field string) ([]E, error)
	// Save inserts when the entity has no id yet and overwrites otherwise.
	// Uniqueness violations are surfaced as field-tagged duplicate errors.
	Save(ctx context.Context, e *E) (*E, error)
	// DeleteByID fails with the resource's not-found error when id is absent
	// and with a referential-integrity error when the entity is still referenced.
	DeleteByID(ctx context.Context, id int64) error
}

// Mapper converts between the wire-facing shape D and the persisted shape E of
// a resource. Implementations are pure and never fail.
type Mapper[D, E any] interface {
	ToDTO(e *E) *D
	ToEntity(d *D) *E
}

// CrudService is the reusable find/list/create/update/delete engine.
// Resource services compose it and layer authorization and carry-forward
// rules on top.
type CrudService[D any] interface {
	Find(ctx context.Context, id int64) (*D, error)
	List(ctx context.Context, direction SortDirection, property string) ([]D, error)
	Create(ctx context.Context, dto *D) (*D, error)
	Update(ctx context.Context, id int64, dto *D) (*D, error)
	Delete(ctx context.Context, id int64) error
}
