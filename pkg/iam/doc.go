// Package iam exposes the user store to the admin panel: user enumeration,
// lookup, and role membership.
//
// Membership is a plain user/role-name relation with three operations:
// IsUserInRole, AddUserToRole, RemoveUserFromRole. Both operations are
// idempotent at the store level (adding an existing membership or removing
// a missing one is a no-op in PostgreSQL through ON CONFLICT / matched
// DELETE).
//
//	repo := iam.NewPostgresUserRepository(queries)
//	service := iam.NewUserService(repo)
//
//	users, err := service.FindUsers(ctx)
//	inRole, err := service.IsUserInRole(ctx, userID, "editor")
//	err = service.AddUserToRole(ctx, userID, "editor")
package iam
