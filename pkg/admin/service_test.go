package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/role-admin/pkg/iam"
	"github.com/tendant/role-admin/pkg/role"
)

// countingUserRepo wraps a user repository and counts mutating calls so
// tests can assert how many add/remove operations a workflow performed
type countingUserRepo struct {
	iam.UserRepository
	adds    int
	removes int
}

func (c *countingUserRepo) AddUserToRole(ctx context.Context, arg iam.MembershipParams) error {
	c.adds++
	return c.UserRepository.AddUserToRole(ctx, arg)
}

func (c *countingUserRepo) RemoveUserFromRole(ctx context.Context, arg iam.MembershipParams) error {
	c.removes++
	return c.UserRepository.RemoveUserFromRole(ctx, arg)
}

func (c *countingUserRepo) mutations() int {
	return c.adds + c.removes
}

type testEnv struct {
	admin    *AdminService
	roles    *role.RoleService
	users    *iam.UserService
	userRepo *countingUserRepo
}

func newTestEnv() *testEnv {
	roleRepo := role.NewInMemoryRoleRepository()
	roleService := role.NewRoleService(roleRepo)

	userRepo := &countingUserRepo{UserRepository: iam.NewInMemoryUserRepository()}
	userService := iam.NewUserService(userRepo)

	return &testEnv{
		admin:    NewAdminService(roleService, userService),
		roles:    roleService,
		users:    userService,
		userRepo: userRepo,
	}
}

func TestCreateRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	tests := []struct {
		name          string
		roleName      string
		wantSucceeded bool
	}{
		{
			name:          "valid role",
			roleName:      "editor",
			wantSucceeded: true,
		},
		{
			name:          "empty role name",
			roleName:      "",
			wantSucceeded: false,
		},
		{
			name:          "whitespace role name",
			roleName:      "   ",
			wantSucceeded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := env.admin.CreateRole(ctx, tt.roleName)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSucceeded, result.Succeeded)
			if tt.wantSucceeded {
				assert.Equal(t, tt.roleName, result.RoleName)
				assert.Empty(t, result.Errors)
			} else {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}

func TestCreateRoleThenListContainsItOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	result, err := env.admin.CreateRole(ctx, "editor")
	require.NoError(t, err)
	require.True(t, result.Succeeded)

	roles, err := env.admin.ListRoles(ctx)
	require.NoError(t, err)

	count := 0
	for _, r := range roles {
		if r.Name == "editor" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateRoleDuplicateLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	result, err := env.admin.CreateRole(ctx, "editor")
	require.NoError(t, err)
	require.True(t, result.Succeeded)

	before, err := env.admin.ListRoles(ctx)
	require.NoError(t, err)

	result, err = env.admin.CreateRole(ctx, "editor")
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.NotEmpty(t, result.Errors)

	after, err := env.admin.ListRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGetRoleForEditNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	missingID := uuid.New()
	result, err := env.admin.GetRoleForEdit(ctx, missingID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotFound, result.Kind)
	assert.Equal(t, missingID, result.MissingID)
}

func TestGetRoleForEdit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	_, err = env.users.CreateUser(ctx, "bob@example.com", "Bob")
	require.NoError(t, err)

	// No members yet
	result, err := env.admin.GetRoleForEdit(ctx, roleID)
	require.NoError(t, err)
	require.Equal(t, OutcomeRendered, result.Kind)
	assert.Equal(t, roleID, result.Model.ID)
	assert.Equal(t, "editor", result.Model.RoleName)
	assert.Empty(t, result.Model.Users)

	// Alice joins the role
	require.NoError(t, env.users.AddUserToRole(ctx, alice.ID, "editor"))

	result, err = env.admin.GetRoleForEdit(ctx, roleID)
	require.NoError(t, err)
	require.Equal(t, OutcomeRendered, result.Kind)
	assert.Equal(t, []string{"Alice"}, result.Model.Users)
}

func TestApplyRoleEdit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)
	_, err = env.roles.CreateRole(ctx, "viewer")
	require.NoError(t, err)

	t.Run("successful rename redirects to role list", func(t *testing.T) {
		result, err := env.admin.ApplyRoleEdit(ctx, EditRoleView{ID: roleID, RoleName: "senior-editor"})
		require.NoError(t, err)

		require.Equal(t, OutcomeRedirect, result.Kind)
		assert.Equal(t, ActionListRoles, result.Redirect.Target)

		renamed, err := env.roles.GetRole(ctx, roleID)
		require.NoError(t, err)
		assert.Equal(t, "senior-editor", renamed.Name)
	})

	t.Run("missing role is not found", func(t *testing.T) {
		missingID := uuid.New()
		result, err := env.admin.ApplyRoleEdit(ctx, EditRoleView{ID: missingID, RoleName: "anything"})
		require.NoError(t, err)

		assert.Equal(t, OutcomeNotFound, result.Kind)
		assert.Equal(t, missingID, result.MissingID)
	})

	t.Run("store rejection redisplays the model", func(t *testing.T) {
		model := EditRoleView{ID: roleID, RoleName: "viewer"}
		result, err := env.admin.ApplyRoleEdit(ctx, model)
		require.NoError(t, err)

		require.Equal(t, OutcomeRendered, result.Kind)
		assert.NotEmpty(t, result.Errors)
		assert.Equal(t, model, result.Model)

		// The rename was not applied
		current, err := env.roles.GetRole(ctx, roleID)
		require.NoError(t, err)
		assert.Equal(t, "senior-editor", current.Name)
	})
}

func TestGetUsersForRoleEdit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	bob, err := env.users.CreateUser(ctx, "bob@example.com", "Bob")
	require.NoError(t, err)
	require.NoError(t, env.users.AddUserToRole(ctx, alice.ID, "editor"))

	result, err := env.admin.GetUsersForRoleEdit(ctx, roleID)
	require.NoError(t, err)
	require.Equal(t, OutcomeRendered, result.Kind)

	// One entry per known user, in store enumeration order
	require.Len(t, result.Users, 2)
	assert.Equal(t, UserRoleView{UserID: alice.ID, UserName: "Alice", IsSelected: true}, result.Users[0])
	assert.Equal(t, UserRoleView{UserID: bob.ID, UserName: "Bob", IsSelected: false}, result.Users[1])

	// Idempotent without intervening mutation
	again, err := env.admin.GetUsersForRoleEdit(ctx, roleID)
	require.NoError(t, err)
	assert.Equal(t, result.Users, again.Users)
}

func TestGetUsersForRoleEditNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	missingID := uuid.New()
	result, err := env.admin.GetUsersForRoleEdit(ctx, missingID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotFound, result.Kind)
	assert.Equal(t, missingID, result.MissingID)
	assert.Zero(t, env.userRepo.mutations())
}

func TestApplyUserRoleEdits(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	bob, err := env.users.CreateUser(ctx, "bob@example.com", "Bob")
	require.NoError(t, err)
	require.NoError(t, env.users.AddUserToRole(ctx, bob.ID, "editor"))
	env.userRepo.adds = 0

	selections := []UserRoleSelection{
		{UserID: alice.ID, IsSelected: true},  // absent -> add
		{UserID: bob.ID, IsSelected: false},   // present -> remove
	}

	result, err := env.admin.ApplyUserRoleEdits(ctx, roleID, selections)
	require.NoError(t, err)

	require.Equal(t, OutcomeRedirect, result.Kind)
	assert.Equal(t, ActionEditRole, result.Redirect.Target)
	assert.Equal(t, roleID.String(), result.Redirect.Params["id"])
	assert.Empty(t, result.Failures)
	assert.Equal(t, 1, env.userRepo.adds)
	assert.Equal(t, 1, env.userRepo.removes)

	inRole, err := env.users.IsUserInRole(ctx, alice.ID, "editor")
	require.NoError(t, err)
	assert.True(t, inRole)

	inRole, err = env.users.IsUserInRole(ctx, bob.ID, "editor")
	require.NoError(t, err)
	assert.False(t, inRole)
}

func TestApplyUserRoleEditsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	bob, err := env.users.CreateUser(ctx, "bob@example.com", "Bob")
	require.NoError(t, err)

	selections := []UserRoleSelection{
		{UserID: alice.ID, IsSelected: true},
		{UserID: bob.ID, IsSelected: false},
	}

	_, err = env.admin.ApplyUserRoleEdits(ctx, roleID, selections)
	require.NoError(t, err)
	firstPass := env.userRepo.mutations()

	// Second application is all no-ops
	_, err = env.admin.ApplyUserRoleEdits(ctx, roleID, selections)
	require.NoError(t, err)
	assert.Equal(t, firstPass, env.userRepo.mutations())
}

func TestRoundTripPerformsNoMutations(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	_, err = env.users.CreateUser(ctx, "bob@example.com", "Bob")
	require.NoError(t, err)
	require.NoError(t, env.users.AddUserToRole(ctx, alice.ID, "editor"))
	env.userRepo.adds = 0

	// Feed the rendered checkboxes straight back in, unmodified
	rendered, err := env.admin.GetUsersForRoleEdit(ctx, roleID)
	require.NoError(t, err)
	require.Equal(t, OutcomeRendered, rendered.Kind)

	selections := make([]UserRoleSelection, len(rendered.Users))
	for i, u := range rendered.Users {
		selections[i] = UserRoleSelection{UserID: u.UserID, IsSelected: u.IsSelected}
	}

	result, err := env.admin.ApplyUserRoleEdits(ctx, roleID, selections)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRedirect, result.Kind)
	assert.Zero(t, env.userRepo.mutations())
}

func TestApplyUserRoleEditsNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)

	missingID := uuid.New()
	result, err := env.admin.ApplyUserRoleEdits(ctx, missingID, []UserRoleSelection{
		{UserID: alice.ID, IsSelected: true},
	})
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotFound, result.Kind)
	assert.Equal(t, missingID, result.MissingID)
	assert.Zero(t, env.userRepo.mutations())
}

func TestApplyUserRoleEditsCollectsFailuresAndContinues(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	roleID, err := env.roles.CreateRole(ctx, "editor")
	require.NoError(t, err)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	unknownID := uuid.New()

	// The unknown user fails, but the entry after it is still applied
	result, err := env.admin.ApplyUserRoleEdits(ctx, roleID, []UserRoleSelection{
		{UserID: unknownID, IsSelected: true},
		{UserID: alice.ID, IsSelected: true},
	})
	require.NoError(t, err)

	require.Equal(t, OutcomeRedirect, result.Kind)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, unknownID, result.Failures[0].UserID)

	inRole, err := env.users.IsUserInRole(ctx, alice.ID, "editor")
	require.NoError(t, err)
	assert.True(t, inRole)
}

// Full workflow: create a role, assign a user, observe it on the edit view
func TestEditorScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, err := env.admin.CreateRole(ctx, "Editor")
	require.NoError(t, err)
	require.True(t, created.Succeeded)

	roles, err := env.admin.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	editorID := roles[0].ID
	assert.Equal(t, "Editor", roles[0].Name)

	edit, err := env.admin.GetRoleForEdit(ctx, editorID)
	require.NoError(t, err)
	require.Equal(t, OutcomeRendered, edit.Kind)
	assert.Equal(t, "Editor", edit.Model.RoleName)
	assert.Empty(t, edit.Model.Users)

	alice, err := env.users.CreateUser(ctx, "alice@example.com", "alice")
	require.NoError(t, err)

	applied, err := env.admin.ApplyUserRoleEdits(ctx, editorID, []UserRoleSelection{
		{UserID: alice.ID, IsSelected: true},
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeRedirect, applied.Kind)

	edit, err = env.admin.GetRoleForEdit(ctx, editorID)
	require.NoError(t, err)
	require.Equal(t, OutcomeRendered, edit.Kind)
	assert.Equal(t, []string{"alice"}, edit.Model.Users)
}
