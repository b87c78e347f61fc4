package iam

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tendant/role-admin/pkg/iam/iamdb"
	"github.com/tendant/role-admin/pkg/utils"
)

// UserRepository defines the interface for user store operations.
// Membership is keyed by role name, mirroring the identity framework's
// is-in-role / add-to-role / remove-from-role contract.
type UserRepository interface {
	FindUsers(ctx context.Context) ([]User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (User, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	IsUserInRole(ctx context.Context, arg MembershipParams) (bool, error)
	AddUserToRole(ctx context.Context, arg MembershipParams) error
	RemoveUserFromRole(ctx context.Context, arg MembershipParams) error

	// Transaction support
	WithPgxTx(tx pgx.Tx) UserRepository
}

// PostgresUserRepository implements UserRepository using iamdb.Queries
type PostgresUserRepository struct {
	queries *iamdb.Queries
}

// NewPostgresUserRepository creates a new PostgreSQL-based user repository
func NewPostgresUserRepository(queries *iamdb.Queries) *PostgresUserRepository {
	return &PostgresUserRepository{
		queries: queries,
	}
}

// FindUsers returns all users in store enumeration order
func (r *PostgresUserRepository) FindUsers(ctx context.Context) ([]User, error) {
	rows, err := r.queries.FindUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, len(rows))
	for i, row := range rows {
		users[i] = User{ID: row.ID, Email: row.Email, Name: row.Name.String}
	}
	return users, nil
}

// GetUserById retrieves a user by ID
func (r *PostgresUserRepository) GetUserById(ctx context.Context, id uuid.UUID) (User, error) {
	row, err := r.queries.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return User{ID: row.ID, Email: row.Email, Name: row.Name.String}, nil
}

// CreateUser provisions a new user
func (r *PostgresUserRepository) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	dbUser, err := r.queries.CreateUser(ctx, iamdb.CreateUserParams{
		Email: arg.Email,
		Name:  utils.ToNullString(arg.Name),
	})
	if err != nil {
		return User{}, err
	}
	return User{ID: dbUser.ID, Email: dbUser.Email, Name: dbUser.Name.String}, nil
}

// IsUserInRole reports whether the user currently holds the named role
func (r *PostgresUserRepository) IsUserInRole(ctx context.Context, arg MembershipParams) (bool, error) {
	return r.queries.IsUserInRole(ctx, iamdb.IsUserInRoleParams{
		UserID: arg.UserID,
		Name:   arg.RoleName,
	})
}

// AddUserToRole adds the user to the named role
func (r *PostgresUserRepository) AddUserToRole(ctx context.Context, arg MembershipParams) error {
	return r.queries.AddUserToRole(ctx, iamdb.AddUserToRoleParams{
		UserID: arg.UserID,
		Name:   arg.RoleName,
	})
}

// RemoveUserFromRole removes the user from the named role
func (r *PostgresUserRepository) RemoveUserFromRole(ctx context.Context, arg MembershipParams) error {
	return r.queries.RemoveUserFromRole(ctx, iamdb.RemoveUserFromRoleParams{
		UserID: arg.UserID,
		Name:   arg.RoleName,
	})
}

// WithPgxTx returns a repository bound to the given transaction
func (r *PostgresUserRepository) WithPgxTx(tx pgx.Tx) UserRepository {
	return &PostgresUserRepository{queries: r.queries.WithTx(tx)}
}
