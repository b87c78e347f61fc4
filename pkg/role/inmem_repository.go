package role

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	apperrors "github.com/tendant/role-admin/pkg/errors"
)

// InMemoryRoleRepository implements RoleRepository using in-memory storage
type InMemoryRoleRepository struct {
	mu    sync.RWMutex
	roles map[uuid.UUID]Role // roleID -> Role
	order []uuid.UUID        // insertion order, for stable enumeration
}

// NewInMemoryRoleRepository creates a new in-memory role repository
func NewInMemoryRoleRepository() *InMemoryRoleRepository {
	return &InMemoryRoleRepository{
		roles: make(map[uuid.UUID]Role),
	}
}

// FindRoles returns all roles in creation order
func (r *InMemoryRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]Role, 0, len(r.order))
	for _, id := range r.order {
		roles = append(roles, r.roles[id])
	}
	return roles, nil
}

// CreateRole creates a new role, rejecting duplicate names the way the
// relational store does through its unique constraint
func (r *InMemoryRoleRepository) CreateRole(ctx context.Context, name string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, role := range r.roles {
		if role.Name == name {
			return uuid.Nil, apperrors.New(apperrors.ErrCodeAlreadyExists, "role name already exists").
				WithDetail("name", name)
		}
	}

	id := uuid.New()
	r.roles[id] = Role{ID: id, Name: name}
	r.order = append(r.order, id)
	return id, nil
}

// GetRoleById retrieves a role by ID
func (r *InMemoryRoleRepository) GetRoleById(ctx context.Context, id uuid.UUID) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[id]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return role, nil
}

// GetRoleIdByName retrieves a role ID by name
func (r *InMemoryRoleRepository) GetRoleIdByName(ctx context.Context, name string) (uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.Name == name {
			return role.ID, nil
		}
	}
	return uuid.Nil, ErrRoleNotFound
}

// UpdateRole renames an existing role
func (r *InMemoryRoleRepository) UpdateRole(ctx context.Context, arg UpdateRoleParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roles[arg.ID]; !ok {
		return ErrRoleNotFound
	}
	for _, role := range r.roles {
		if role.ID != arg.ID && role.Name == arg.Name {
			return apperrors.New(apperrors.ErrCodeAlreadyExists, "role name already exists").
				WithDetail("name", arg.Name)
		}
	}
	r.roles[arg.ID] = Role{ID: arg.ID, Name: arg.Name}
	return nil
}

// WithPgxTx returns the same repository (no-op for in-memory)
func (r *InMemoryRoleRepository) WithPgxTx(tx pgx.Tx) RoleRepository {
	return r
}
