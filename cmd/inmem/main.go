// Package main runs the role administration service without a database
// using in-memory repositories. This is useful for:
// - Quick development and testing
// - Demo/prototype environments
// - Learning the API without database setup
//
// Note: All data is lost when the server stops. For production, use
// cmd/roleadmin with PostgreSQL.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tendant/chi-demo/app"
	adminpkg "github.com/tendant/role-admin/pkg/admin"
	adminapi "github.com/tendant/role-admin/pkg/admin/api"
	"github.com/tendant/role-admin/pkg/config"
	"github.com/tendant/role-admin/pkg/iam"
	"github.com/tendant/role-admin/pkg/role"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting in-memory role administration service (no database required)")

	roleRepo := role.NewInMemoryRoleRepository()
	roleService := role.NewRoleService(roleRepo)

	userRepo := iam.NewInMemoryUserRepository()
	userService := iam.NewUserService(userRepo)

	seedInitialData(roleService, userService)

	adminService := adminpkg.NewAdminService(roleService, userService)
	adminHandler := adminapi.NewHandler(adminService)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	// No authentication gate here: the in-memory binary is for local
	// development only.
	adminHandler.RegisterRoutes(server.R)

	slog.Info("In-memory role administration service ready")
	server.Run()
}

// seedInitialData creates a few roles and users so the API is immediately
// explorable
func seedInitialData(roleService *role.RoleService, userService *iam.UserService) {
	ctx := context.Background()

	adminRole := config.GetPrimaryAdminRole(config.ParseAdminRoleNames(""))
	for _, name := range []string{adminRole, "editor", "viewer"} {
		if _, err := roleService.CreateRole(ctx, name); err != nil {
			slog.Error("Failed to seed role", "name", name, "err", err)
		}
	}

	seedUsers := []struct {
		email string
		name  string
		roles []string
	}{
		{"admin@example.com", "Admin", []string{adminRole}},
		{"alice@example.com", "Alice", []string{"editor"}},
		{"bob@example.com", "Bob", nil},
	}

	for _, su := range seedUsers {
		user, err := userService.CreateUser(ctx, su.email, su.name)
		if err != nil {
			slog.Error("Failed to seed user", "email", su.email, "err", err)
			continue
		}
		for _, roleName := range su.roles {
			if err := userService.AddUserToRole(ctx, user.ID, roleName); err != nil {
				slog.Error("Failed to seed membership", "email", su.email, "role", roleName, "err", err)
			}
		}
	}

	slog.Info("Seeded initial data", "roles", 3, "users", len(seedUsers))
}
