package seeders

import (
	"context"
	"log"

	"calibration-system/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCoreDictionaries fills the reference registries that the intake form
// depends on. Safe to run repeatedly, existing rows are left alone.
func SeedCoreDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding reference registries...")

	if err := seedBrands(ctx, db); err != nil {
		log.Fatalf("brand seeding failed: %v", err)
	}
	if err := seedModels(ctx, db); err != nil {
		log.Fatalf("model seeding failed: %v", err)
	}
	if err := seedTechnicians(ctx, db); err != nil {
		log.Fatalf("technician seeding failed: %v", err)
	}
	log.Println("reference registries seeded")
}

// SeedAdmin creates the initial workshop user if the seed credentials are
// configured.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	if err := seedAdminUser(context.Background(), db, cfg); err != nil {
		log.Fatalf("admin seeding failed: %v", err)
	}
}
