package iam

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserService provides read and membership operations over the user store.
// User lifecycle (signup, credentials, deletion) belongs to the identity
// framework; this service only provisions users for bootstrap and manages
// role membership.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// FindUsers returns all known users in store enumeration order
func (s *UserService) FindUsers(ctx context.Context) ([]User, error) {
	return s.repo.FindUsers(ctx)
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetUserById(ctx, id)
}

// CreateUser provisions a new user
func (s *UserService) CreateUser(ctx context.Context, email, name string) (User, error) {
	if email == "" {
		return User{}, errors.New("email is required")
	}
	return s.repo.CreateUser(ctx, CreateUserParams{Email: email, Name: name})
}

// IsUserInRole reports whether the user currently holds the named role
func (s *UserService) IsUserInRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error) {
	return s.repo.IsUserInRole(ctx, MembershipParams{UserID: userID, RoleName: roleName})
}

// AddUserToRole adds the user to the named role
func (s *UserService) AddUserToRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	err := s.repo.AddUserToRole(ctx, MembershipParams{UserID: userID, RoleName: roleName})
	if err != nil {
		slog.Error("Failed to add user to role", "userId", userID, "role", roleName, "err", err)
		return err
	}
	slog.Info("Added user to role", "userId", userID, "role", roleName)
	return nil
}

// RemoveUserFromRole removes the user from the named role
func (s *UserService) RemoveUserFromRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	err := s.repo.RemoveUserFromRole(ctx, MembershipParams{UserID: userID, RoleName: roleName})
	if err != nil {
		slog.Error("Failed to remove user from role", "userId", userID, "role", roleName, "err", err)
		return err
	}
	slog.Info("Removed user from role", "userId", userID, "role", roleName)
	return nil
}
