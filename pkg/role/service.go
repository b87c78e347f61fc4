package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoleName = errors.New("role name cannot be empty")
	ErrRoleNotFound  = errors.New("role not found")
)

// RoleService provides methods for role management
type RoleService struct {
	repo RoleRepository
}

func NewRoleService(repo RoleRepository) *RoleService {
	return &RoleService{
		repo: repo,
	}
}

// FindRoles returns all roles currently persisted
func (s *RoleService) FindRoles(ctx context.Context) ([]Role, error) {
	return s.repo.FindRoles(ctx)
}

// CreateRole adds a new role
func (s *RoleService) CreateRole(ctx context.Context, name string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, ErrEmptyRoleName
	}
	return s.repo.CreateRole(ctx, name)
}

// UpdateRole renames an existing role
func (s *RoleService) UpdateRole(ctx context.Context, id uuid.UUID, name string) error {
	if name == "" {
		return ErrEmptyRoleName
	}

	// Check if role exists
	_, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.UpdateRole(ctx, UpdateRoleParams{ID: id, Name: name})
}

// GetRole retrieves a role by ID
func (s *RoleService) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	return s.repo.GetRoleById(ctx, id)
}

// GetRoleIdByName retrieves a role ID by name
func (s *RoleService) GetRoleIdByName(ctx context.Context, name string) (uuid.UUID, error) {
	return s.repo.GetRoleIdByName(ctx, name)
}
