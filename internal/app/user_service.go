package app

import (
	"errors"
	"strings"

	"taskdo/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	store UserStore
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) List() ([]model.User, error) {
	return s.store.List()
}

func (s *UserService) Get(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		fields["name"] = name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, ErrInvalidInput
		}
		fields["email"] = email
	}
	if len(fields) == 0 {
		return user, nil
	}

	if err := s.store.Update(id, fields); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Remove soft-deletes the user. The email stays reserved; see the
// registration duplicate check.
func (s *UserService) Remove(id uint) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(user); err != nil {
		return nil, err
	}
	return user, nil
}
