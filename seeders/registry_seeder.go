package seeders

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Common gas detector makes and models seen in the workshop. The list is a
// starting point, new entries arrive through the API.
var brandNames = []string{"Dräger", "Honeywell", "MSA", "Industrial Scientific", "Crowcon"}

var modelNames = []string{
	"X-am 2500", "X-am 5000", "Pac 6500",
	"BW Clip4", "GasAlert MicroClip XL",
	"Altair 4XR", "Altair 5X",
	"Ventis MX4",
	"Gas-Pro", "T4",
}

var technicianNames = []string{"Miguel Ángel", "José Luis", "Carmen"}

func seedBrands(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'brands'...")
	query := `INSERT INTO brands (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	for _, name := range brandNames {
		if _, err := db.Exec(ctx, query, uuid.NewString(), name); err != nil {
			return err
		}
	}
	return nil
}

func seedModels(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'models'...")
	query := `INSERT INTO models (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	for _, name := range modelNames {
		if _, err := db.Exec(ctx, query, uuid.NewString(), name); err != nil {
			return err
		}
	}
	return nil
}

func seedTechnicians(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'technicians'...")
	query := `INSERT INTO technicians (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	for _, name := range technicianNames {
		if _, err := db.Exec(ctx, query, uuid.NewString(), name); err != nil {
			return err
		}
	}
	return nil
}
