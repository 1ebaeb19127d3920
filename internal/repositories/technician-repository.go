package repositories

import (
	"context"
	"errors"
	"fmt"

	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	technicianTable  = "technicians"
	technicianFields = "id, name, created_at"
)

type TechnicianRepositoryInterface interface {
	CreateTechnician(ctx context.Context, technician entities.Technician) (*entities.Technician, error)
	GetTechnicians(ctx context.Context, limit uint64) ([]entities.Technician, error)
}

type technicianRepository struct {
	storage *pgxpool.Pool
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &technicianRepository{storage: storage}
}

func (r *technicianRepository) CreateTechnician(ctx context.Context, technician entities.Technician) (*entities.Technician, error) {
	query := fmt.Sprintf(`INSERT INTO %s (id, name) VALUES ($1, $2) RETURNING %s`, technicianTable, technicianFields)
	var t entities.Technician
	err := r.storage.QueryRow(ctx, query, technician.ID, technician.Name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &t, nil
}

func (r *technicianRepository) GetTechnicians(ctx context.Context, limit uint64) ([]entities.Technician, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at LIMIT $1`, technicianFields, technicianTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	technicians := make([]entities.Technician, 0)
	for rows.Next() {
		var t entities.Technician
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}
