package main

import (
	"log"

	"calibration-system/pkg/config"
	"calibration-system/pkg/database/postgresql"
	"calibration-system/seeders"
)

func main() {
	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN, "migrations"); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedCoreDictionaries(db)
	seeders.SeedAdmin(db, cfg)
}
