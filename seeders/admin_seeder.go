package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"calibration-system/pkg/config"
	"calibration-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	log.Println("  - seeding admin user...")

	username := cfg.Seeder.AdminUsername
	password := cfg.Seeder.AdminPassword
	if username == "" || password == "" {
		log.Println("    SEED_ADMIN_USERNAME or SEED_ADMIN_PASSWORD not set, skipping")
		return nil
	}

	var existingID int
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&existingID)
	if err == nil {
		log.Printf("    user %q already exists, leaving it alone", username)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (username, full_name, password) VALUES ($1, $2, $3)`,
		username, "Workshop Administrator", hashed,
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Printf("    admin user %q created", username)
	return nil
}
