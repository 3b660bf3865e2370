package service

import (
	"context"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
)

// UserService exposes user profiles.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns a user's public profile.
func (s *UserService) Get(ctx context.Context, id uint) (*domain.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// Update modifies the requester's own profile fields.
func (s *UserService) Update(ctx context.Context, id uint, req *domain.UpdateUserRequest) (*domain.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// Deactivate disables an account. Data stays; tokens stop working on their
// next introspection.
func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	return s.users.SetActive(ctx, id, false)
}
