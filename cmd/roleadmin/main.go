package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	adminpkg "github.com/tendant/role-admin/pkg/admin"
	adminapi "github.com/tendant/role-admin/pkg/admin/api"
	"github.com/tendant/role-admin/pkg/config"
	"github.com/tendant/role-admin/pkg/iam"
	"github.com/tendant/role-admin/pkg/iam/iamdb"
	"github.com/tendant/role-admin/pkg/role"
	"github.com/tendant/role-admin/pkg/role/roledb"
)

type JwtConfig struct {
	Secret   string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer   string `env:"JWT_ISSUER" env-default:"role-admin"`
	Audience string `env:"JWT_AUDIENCE" env-default:"role-admin"`
}

type Config struct {
	DbConfig   config.DatabaseConfig
	AppConfig  app.AppConfig
	JwtConfig  JwtConfig
	AdminRoles string `env:"ADMIN_ROLE_NAMES" env-default:""`
}

// loadEnvFile loads environment variables from a .env file in the current
// working directory if one exists
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		slog.Error("Failed to get current working directory", "error", err)
		return
	}

	envFile := filepath.Join(cwd, ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(envFile); err != nil {
		slog.Error("Failed to load .env file", "error", err, "path", envFile)
		return
	}
	slog.Info("Configuration loaded from .env file", "path", envFile)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	loadEnvFile()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	pool, err := dbutils.NewDbPool(context.Background(), cfg.DbConfig.ToDbConfig())
	if err != nil {
		slog.Error("Failed creating dbpool", "db", cfg.DbConfig.Database, "host", cfg.DbConfig.Host, "port", cfg.DbConfig.Port, "user", cfg.DbConfig.User)
		os.Exit(-1)
	}

	roleRepo := role.NewPostgresRoleRepository(roledb.New(pool))
	roleService := role.NewRoleService(roleRepo)

	userRepo := iam.NewPostgresUserRepository(iamdb.New(pool))
	userService := iam.NewUserService(userRepo)

	adminService := adminpkg.NewAdminService(roleService, userService)
	adminHandler := adminapi.NewHandler(adminService)

	adminRoles := config.ParseAdminRoleNames(cfg.AdminRoles)
	tokenAuth := jwtauth.New("HS256", []byte(cfg.JwtConfig.Secret), nil)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	server.R.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(adminapi.AdminRoleMiddleware(adminRoles))

		adminHandler.RegisterRoutes(r)
	})

	slog.Info("Role administration service ready", "adminRoles", adminRoles)
	server.Run()
}
