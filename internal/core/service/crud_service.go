package service

import (
	"context"

	"github.com/request-management/request-system/internal/core/ports"
)

// keyed is satisfied by pointer DTO types, letting the generic engine stamp
// the target id on update without knowing the concrete shape.
type keyed interface {
	SetID(id int64)
}

// CrudService is the reusable find/list/create/update/delete engine shared by
// every resource. It talks only to the repository and mapper collaborators;
// resource services compose it and layer authorization and carry-forward
// rules on top.
type CrudService[D, E any] struct {
	repo   ports.Repository[E]
	mapper ports.Mapper[D, E]
}

func NewCrudService[D, E any](repo ports.Repository[E], mapper ports.Mapper[D, E]) *CrudService[D, E] {
	return &CrudService[D, E]{repo: repo, mapper: mapper}
}

func (s *CrudService[D, E]) Find(ctx context.Context, id int64) (*D, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDTO(entity), nil
}

func (s *CrudService[D, E]) List(ctx context.Context, direction ports.SortDirection, property string) ([]D, error) {
	entities, err := s.repo.FindAllSorted(ctx, direction, property)
	if err != nil {
		return nil, err
	}

	dtos := make([]D, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *s.mapper.ToDTO(&entities[i]))
	}
	return dtos, nil
}

func (s *CrudService[D, E]) Create(ctx context.Context, dto *D) (*D, error) {
	saved, err := s.repo.Save(ctx, s.mapper.ToEntity(dto))
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDTO(saved), nil
}

// Update overwrites the stored record with dto after confirming id resolves.
// Field carry-forward is the calling layer's responsibility.
func (s *CrudService[D, E]) Update(ctx context.Context, id int64, dto *D) (*D, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if k, ok := any(dto).(keyed); ok {
		k.SetID(id)
	}

	saved, err := s.repo.Save(ctx, s.mapper.ToEntity(dto))
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDTO(saved), nil
}

func (s *CrudService[D, E]) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}
