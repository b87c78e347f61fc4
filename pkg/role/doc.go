// Package role manages the role store for the admin panel.
//
// Roles are named permission groups with unique names. Name uniqueness is
// enforced by the store itself (a unique constraint in PostgreSQL, an
// explicit scan in the in-memory repository), not by callers.
//
// # Basic Usage
//
//	import "github.com/tendant/role-admin/pkg/role"
//
//	// Create service
//	repo := role.NewPostgresRoleRepository(queries)
//	service := role.NewRoleService(repo)
//
//	// Create a role
//	roleID, err := service.CreateRole(ctx, "editor")
//
//	// List all roles
//	roles, err := service.FindRoles(ctx)
//	for _, r := range roles {
//		fmt.Printf("%s: %s\n", r.ID, r.Name)
//	}
//
//	// Rename a role
//	err = service.UpdateRole(ctx, roleID, "senior-editor")
//
// Roles are never deleted through this package; the admin panel does not
// expose deletion.
//
// # Related Packages
//
//   - pkg/iam - users and role membership
//   - pkg/admin - role administration workflows
package role
