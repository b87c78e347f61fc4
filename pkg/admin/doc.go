// Package admin implements the role administration workflows: create
// role, list roles, edit a role's name, and edit which users hold a role.
//
// Each workflow is a single request/response over the role store
// (pkg/role) and the user store (pkg/iam). Store calls are issued
// sequentially; the membership edit in particular re-checks membership
// immediately before each add/remove decision.
//
// Results are tagged outcomes rather than raw errors: a workflow either
// renders a view-model, redirects to the next action, or reports the
// missing role id. Validation and store rejections are carried as ordered
// error description lists inside the outcome. Only infrastructure
// failures (store unreachable) surface as Go errors.
//
//	svc := admin.NewAdminService(roleService, userService)
//
//	res, err := svc.GetUsersForRoleEdit(ctx, roleID)
//	if err != nil {
//		// infrastructure failure
//	}
//	switch res.Kind {
//	case admin.OutcomeNotFound:
//		// res.MissingID
//	case admin.OutcomeRendered:
//		// res.Users
//	}
package admin
