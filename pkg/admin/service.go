package admin

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/tendant/role-admin/pkg/errors"
	"github.com/tendant/role-admin/pkg/iam"
	"github.com/tendant/role-admin/pkg/role"
)

// AdminService orchestrates the role administration workflows over the
// role store and the user store. Domain failures (validation, store
// rejection, missing role) come back inside the result; only
// infrastructure errors are returned as plain errors.
type AdminService struct {
	roleService *role.RoleService
	userService *iam.UserService
}

// NewAdminService creates a new admin service
func NewAdminService(roleService *role.RoleService, userService *iam.UserService) *AdminService {
	return &AdminService{
		roleService: roleService,
		userService: userService,
	}
}

// CreateRole creates a new role with the given name. An empty name is
// rejected before any store call; duplicate names come back as store
// error descriptions.
func (s *AdminService) CreateRole(ctx context.Context, roleName string) (CreateRoleResult, error) {
	if strings.TrimSpace(roleName) == "" {
		return CreateRoleResult{
			RoleName: roleName,
			Errors:   []string{"role name is required"},
		}, nil
	}

	_, err := s.roleService.CreateRole(ctx, roleName)
	if err != nil {
		if descs, ok := storeErrorDescriptions(err); ok {
			return CreateRoleResult{RoleName: roleName, Errors: descs}, nil
		}
		return CreateRoleResult{}, err
	}

	slog.Info("Created role", "name", roleName)
	return CreateRoleResult{Succeeded: true, RoleName: roleName}, nil
}

// ListRoles returns all roles currently persisted
func (s *AdminService) ListRoles(ctx context.Context) ([]role.Role, error) {
	return s.roleService.FindRoles(ctx)
}

// GetRoleForEdit builds the edit-role view for the given role: its id and
// name plus the display names of every user currently in the role. Every
// known user is checked once, in store enumeration order.
func (s *AdminService) GetRoleForEdit(ctx context.Context, roleID uuid.UUID) (EditRoleResult, error) {
	rl, err := s.roleService.GetRole(ctx, roleID)
	if errors.Is(err, role.ErrRoleNotFound) {
		return EditRoleResult{Outcome: notFound(roleID)}, nil
	}
	if err != nil {
		return EditRoleResult{}, err
	}

	users, err := s.userService.FindUsers(ctx)
	if err != nil {
		return EditRoleResult{}, err
	}

	model := EditRoleView{
		ID:       rl.ID,
		RoleName: rl.Name,
		Users:    []string{},
	}
	for _, u := range users {
		inRole, err := s.userService.IsUserInRole(ctx, u.ID, rl.Name)
		if err != nil {
			return EditRoleResult{}, err
		}
		if inRole {
			model.Users = append(model.Users, u.DisplayName())
		}
	}

	return EditRoleResult{Outcome: rendered(), Model: model}, nil
}

// ApplyRoleEdit renames the role identified by model.ID to model.RoleName.
// Success redirects to the role list; a store rejection redisplays the
// submitted model with the store's error descriptions.
func (s *AdminService) ApplyRoleEdit(ctx context.Context, model EditRoleView) (EditRoleResult, error) {
	_, err := s.roleService.GetRole(ctx, model.ID)
	if errors.Is(err, role.ErrRoleNotFound) {
		return EditRoleResult{Outcome: notFound(model.ID)}, nil
	}
	if err != nil {
		return EditRoleResult{}, err
	}

	err = s.roleService.UpdateRole(ctx, model.ID, model.RoleName)
	if err != nil {
		// The role can disappear between the lookup and the update.
		if errors.Is(err, role.ErrRoleNotFound) {
			return EditRoleResult{Outcome: notFound(model.ID)}, nil
		}
		if descs, ok := storeErrorDescriptions(err); ok {
			return EditRoleResult{Outcome: renderedWithErrors(descs), Model: model}, nil
		}
		return EditRoleResult{}, err
	}

	slog.Info("Renamed role", "roleId", model.ID, "name", model.RoleName)
	return EditRoleResult{Outcome: redirectTo(ActionListRoles, nil)}, nil
}

// GetUsersForRoleEdit builds one membership checkbox per known user for
// the given role, in store enumeration order.
func (s *AdminService) GetUsersForRoleEdit(ctx context.Context, roleID uuid.UUID) (UserRoleEditResult, error) {
	rl, err := s.roleService.GetRole(ctx, roleID)
	if errors.Is(err, role.ErrRoleNotFound) {
		return UserRoleEditResult{Outcome: notFound(roleID)}, nil
	}
	if err != nil {
		return UserRoleEditResult{}, err
	}

	users, err := s.userService.FindUsers(ctx)
	if err != nil {
		return UserRoleEditResult{}, err
	}

	views := make([]UserRoleView, 0, len(users))
	for _, u := range users {
		inRole, err := s.userService.IsUserInRole(ctx, u.ID, rl.Name)
		if err != nil {
			return UserRoleEditResult{}, err
		}
		views = append(views, UserRoleView{
			UserID:     u.ID,
			UserName:   u.DisplayName(),
			IsSelected: inRole,
		})
	}

	return UserRoleEditResult{Outcome: rendered(), Users: views}, nil
}

// ApplyUserRoleEdits applies the submitted membership selections for the
// given role in input order. Each entry is checked against current
// membership just before the decision: selected-and-absent adds,
// unselected-and-present removes, anything else is a no-op. A failing
// entry never aborts later entries; all failures are collected and
// returned alongside the redirect back to the edit-role view.
func (s *AdminService) ApplyUserRoleEdits(ctx context.Context, roleID uuid.UUID, selections []UserRoleSelection) (MembershipEditResult, error) {
	rl, err := s.roleService.GetRole(ctx, roleID)
	if errors.Is(err, role.ErrRoleNotFound) {
		return MembershipEditResult{Outcome: notFound(roleID)}, nil
	}
	if err != nil {
		return MembershipEditResult{}, err
	}

	var failures []ItemFailure
	for _, sel := range selections {
		inRole, err := s.userService.IsUserInRole(ctx, sel.UserID, rl.Name)
		if err != nil {
			failures = append(failures, ItemFailure{UserID: sel.UserID, Error: err.Error()})
			continue
		}

		switch {
		case sel.IsSelected && !inRole:
			err = s.userService.AddUserToRole(ctx, sel.UserID, rl.Name)
		case !sel.IsSelected && inRole:
			err = s.userService.RemoveUserFromRole(ctx, sel.UserID, rl.Name)
		default:
			continue
		}
		if err != nil {
			failures = append(failures, ItemFailure{UserID: sel.UserID, Error: err.Error()})
		}
	}

	if len(failures) > 0 {
		slog.Warn("Membership edit finished with failures", "roleId", roleID, "failed", len(failures), "total", len(selections))
	}

	return MembershipEditResult{
		Outcome:  redirectTo(ActionEditRole, map[string]string{"id": roleID.String()}),
		Failures: failures,
	}, nil
}

// storeErrorDescriptions flattens a store rejection into its ordered error
// descriptions. It reports false for errors that are not domain-level
// (infrastructure failures), which callers propagate instead.
func storeErrorDescriptions(err error) ([]string, bool) {
	var descs []string
	for _, e := range flatten(err) {
		if appErr, ok := apperrors.As(e); ok {
			descs = append(descs, appErr.Message)
			continue
		}
		if errors.Is(e, role.ErrEmptyRoleName) {
			descs = append(descs, e.Error())
			continue
		}
		return nil, false
	}
	return descs, len(descs) > 0
}

// flatten expands errors joined with errors.Join, preserving order
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
