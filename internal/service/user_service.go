package service

import (
	"context"

	"proplist/internal/model"
	"proplist/internal/repository"
)

// UserService exposes the staff-facing user directory.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
