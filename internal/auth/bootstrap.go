package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sara/shopease/internal/database/models"
	"github.com/sara/shopease/internal/store"
	"github.com/sara/shopease/pkg/config"
)

// EnsureAdmin runs once at startup. It is idempotent: if any admin exists it
// does nothing. Otherwise it promotes the configured account if it already
// exists, or creates it. This is the only path that elevates a role.
func EnsureAdmin(ctx context.Context, users *store.Users, cfg config.AdminConfig, logger *slog.Logger) error {
	hasAdmin, err := users.AdminExists(ctx)
	if err != nil {
		return err
	}
	if hasAdmin {
		return nil
	}

	if cfg.Email == "" || cfg.Password == "" {
		logger.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin bootstrap")
		return nil
	}

	existing, err := users.FindByEmail(ctx, normalizeEmail(cfg.Email))
	if err == nil {
		if !existing.IsAdmin() {
			existing.Role = models.RoleAdmin
			if err := users.Save(ctx, existing); err != nil {
				return err
			}
			logger.Info("promoted existing user to admin", "email", cfg.Email)
		}
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         cfg.Name,
		Email:        normalizeEmail(cfg.Email),
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsVerified:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("created admin user", "email", cfg.Email)
	return nil
}
