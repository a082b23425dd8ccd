// Command migrate applies the database schema and optionally seeds an admin
// account from ADMIN_USERNAME/ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"seacoff/internal/config"
	"seacoff/internal/database"
	"seacoff/internal/model"
	"seacoff/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	logger.Info().Msg("schema applied")

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		logger.Info().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	adminRepo := repository.NewAdminRepository(pool, logger)

	existing, err := adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Info().Str("username", username).Msg("admin already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("admin account seeded")
	return nil
}
