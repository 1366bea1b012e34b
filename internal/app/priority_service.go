package app

import (
	"context"
	"errors"
	"strings"

	"taskdo/internal/model"
)

var (
	ErrPriorityNotFound = errors.New("priority not found")
	ErrPriorityInUse    = errors.New("priority is in use by tasks")
)

type PriorityStore interface {
	Create(priority *model.Priority) error
	List() ([]model.Priority, error)
	GetByID(id uint) (*model.Priority, error)
	Update(id uint, fields map[string]any) error
	DeleteGuarded(id uint) (deleted bool, inUse bool, err error)
}

// PriorityListCache is optional; cache failures never fail a request.
type PriorityListCache interface {
	GetList(ctx context.Context) ([]model.Priority, bool, error)
	SetList(ctx context.Context, priorities []model.Priority) error
	Invalidate(ctx context.Context) error
}

type PriorityService struct {
	store PriorityStore
	cache PriorityListCache
}

type UpdatePriorityInput struct {
	Description *string
}

func NewPriorityService(store PriorityStore, cache PriorityListCache) *PriorityService {
	return &PriorityService{
		store: store,
		cache: cache,
	}
}

func (s *PriorityService) Create(description string) (*model.Priority, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrInvalidInput
	}

	priority := &model.Priority{Description: description}
	if err := s.store.Create(priority); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return priority, nil
}

func (s *PriorityService) List() ([]model.Priority, error) {
	if s.cache != nil {
		if cached, hit, err := s.cache.GetList(context.Background()); err == nil && hit {
			return cached, nil
		}
	}

	priorities, err := s.store.List()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(context.Background(), priorities)
	}
	return priorities, nil
}

func (s *PriorityService) Get(id uint) (*model.Priority, error) {
	if id == 0 {
		return nil, ErrPriorityNotFound
	}
	priority, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return nil, ErrPriorityNotFound
	}
	return priority, nil
}

func (s *PriorityService) Update(id uint, input UpdatePriorityInput) (*model.Priority, error) {
	priority, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, ErrInvalidInput
		}
		fields["description"] = description
	}
	if len(fields) == 0 {
		return priority, nil
	}

	if err := s.store.Update(id, fields); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return s.Get(id)
}

func (s *PriorityService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	deleted, inUse, err := s.store.DeleteGuarded(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrPriorityInUse
	}
	if !deleted {
		return ErrPriorityNotFound
	}
	s.invalidateCache()
	return nil
}

func (s *PriorityService) invalidateCache() {
	if s.cache != nil {
		_ = s.cache.Invalidate(context.Background())
	}
}
