package service

import (
	"context"
	"strings"

	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/repository"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

// UserService manages the agent directory.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// UserCreateInput describes a new agent or admin.
type UserCreateInput struct {
	Name  string
	Email string
	Role  domain.UserRole
}

// CreateUser registers a new user, defaulting the role to agent.
func (s *UserService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, apperrors.NewValidationError("name and email required", nil)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleAgent
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": string(role)})
	}

	user := &domain.User{Name: name, Email: email, Role: role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return user, nil
}

// ListUsers returns all users, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return users, nil
}
