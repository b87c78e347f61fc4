package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/tendant/role-admin/pkg/errors"
	"github.com/tendant/role-admin/pkg/role/roledb"
)

// Role represents a named permission group in the domain model
type Role struct {
	ID   uuid.UUID
	Name string
}

// UpdateRoleParams represents parameters for renaming a role
type UpdateRoleParams struct {
	ID   uuid.UUID
	Name string
}

// RoleRepository defines the interface for role store operations
type RoleRepository interface {
	FindRoles(ctx context.Context) ([]Role, error)
	CreateRole(ctx context.Context, name string) (uuid.UUID, error)
	GetRoleById(ctx context.Context, id uuid.UUID) (Role, error)
	GetRoleIdByName(ctx context.Context, name string) (uuid.UUID, error)
	UpdateRole(ctx context.Context, arg UpdateRoleParams) error

	// Transaction support
	WithPgxTx(tx pgx.Tx) RoleRepository
}

// PostgresRoleRepository implements RoleRepository using roledb.Queries
type PostgresRoleRepository struct {
	queries *roledb.Queries
}

// NewPostgresRoleRepository creates a new PostgreSQL-based role repository
func NewPostgresRoleRepository(queries *roledb.Queries) *PostgresRoleRepository {
	return &PostgresRoleRepository{
		queries: queries,
	}
}

// FindRoles returns all roles in name order
func (r *PostgresRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.queries.FindRoles(ctx)
	if err != nil {
		return nil, err
	}
	roles := make([]Role, len(rows))
	for i, row := range rows {
		roles[i] = Role{ID: row.ID, Name: row.Name}
	}
	return roles, nil
}

// CreateRole creates a new role
func (r *PostgresRoleRepository) CreateRole(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := r.queries.CreateRole(ctx, name)
	if err != nil {
		return uuid.Nil, translateRoleError(err, name)
	}
	return id, nil
}

// GetRoleById retrieves a role by ID
func (r *PostgresRoleRepository) GetRoleById(ctx context.Context, id uuid.UUID) (Role, error) {
	row, err := r.queries.GetRoleById(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return Role{ID: row.ID, Name: row.Name}, nil
}

// GetRoleIdByName retrieves a role ID by name
func (r *PostgresRoleRepository) GetRoleIdByName(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := r.queries.GetRoleIdByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrRoleNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateRole renames an existing role
func (r *PostgresRoleRepository) UpdateRole(ctx context.Context, arg UpdateRoleParams) error {
	err := r.queries.UpdateRole(ctx, roledb.UpdateRoleParams{ID: arg.ID, Name: arg.Name})
	if err != nil {
		return translateRoleError(err, arg.Name)
	}
	return nil
}

// WithPgxTx returns a repository bound to the given transaction
func (r *PostgresRoleRepository) WithPgxTx(tx pgx.Tx) RoleRepository {
	return &PostgresRoleRepository{queries: r.queries.WithTx(tx)}
}

// translateRoleError maps a unique violation on the role name to a
// structured ALREADY_EXISTS error; other errors pass through untouched.
func translateRoleError(err error, name string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.Wrap(apperrors.ErrCodeAlreadyExists, "role name already exists", err).
			WithDetail("name", name)
	}
	return err
}
