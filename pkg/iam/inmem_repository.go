package iam

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InMemoryUserRepository implements UserRepository using in-memory storage
type InMemoryUserRepository struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]User
	order       []uuid.UUID                  // insertion order, for stable enumeration
	memberships map[uuid.UUID]map[string]bool // userID -> role name -> member
}

// NewInMemoryUserRepository creates a new in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:       make(map[uuid.UUID]User),
		memberships: make(map[uuid.UUID]map[string]bool),
	}
}

// FindUsers returns all users in creation order
func (r *InMemoryUserRepository) FindUsers(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

// GetUserById retrieves a user by ID
func (r *InMemoryUserRepository) GetUserById(ctx context.Context, id uuid.UUID) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateUser provisions a new user
func (r *InMemoryUserRepository) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := User{ID: uuid.New(), Email: arg.Email, Name: arg.Name}
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	r.memberships[user.ID] = make(map[string]bool)
	return user, nil
}

// IsUserInRole reports whether the user currently holds the named role
func (r *InMemoryUserRepository) IsUserInRole(ctx context.Context, arg MembershipParams) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles, ok := r.memberships[arg.UserID]
	if !ok {
		return false, nil
	}
	return roles[arg.RoleName], nil
}

// AddUserToRole adds the user to the named role
func (r *InMemoryUserRepository) AddUserToRole(ctx context.Context, arg MembershipParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[arg.UserID]; !ok {
		return ErrUserNotFound
	}
	if r.memberships[arg.UserID] == nil {
		r.memberships[arg.UserID] = make(map[string]bool)
	}
	r.memberships[arg.UserID][arg.RoleName] = true
	return nil
}

// RemoveUserFromRole removes the user from the named role
func (r *InMemoryUserRepository) RemoveUserFromRole(ctx context.Context, arg MembershipParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if roles, ok := r.memberships[arg.UserID]; ok {
		delete(roles, arg.RoleName)
	}
	return nil
}

// WithPgxTx returns the same repository (no-op for in-memory)
func (r *InMemoryUserRepository) WithPgxTx(tx pgx.Tx) UserRepository {
	return r
}
