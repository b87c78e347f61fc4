package iam

import (
	"github.com/google/uuid"
)

// User represents a user known to the identity store
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`
}

// DisplayName returns the user's name, falling back to the email address
// when no name is set
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// CreateUserParams contains parameters for provisioning a new user
type CreateUserParams struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// MembershipParams identifies one user/role-name membership
type MembershipParams struct {
	UserID   uuid.UUID
	RoleName string
}
