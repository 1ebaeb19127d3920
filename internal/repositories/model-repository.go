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
	modelTable  = "models"
	modelFields = "id, name, created_at"
)

type ModelRepositoryInterface interface {
	CreateModel(ctx context.Context, model entities.Model) (*entities.Model, error)
	GetModels(ctx context.Context, limit uint64) ([]entities.Model, error)
}

type modelRepository struct {
	storage *pgxpool.Pool
}

func NewModelRepository(storage *pgxpool.Pool) ModelRepositoryInterface {
	return &modelRepository{storage: storage}
}

func (r *modelRepository) CreateModel(ctx context.Context, model entities.Model) (*entities.Model, error) {
	query := fmt.Sprintf(`INSERT INTO %s (id, name) VALUES ($1, $2) RETURNING %s`, modelTable, modelFields)
	var m entities.Model
	err := r.storage.QueryRow(ctx, query, model.ID, model.Name).Scan(&m.ID, &m.Name, &m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &m, nil
}

func (r *modelRepository) GetModels(ctx context.Context, limit uint64) ([]entities.Model, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at LIMIT $1`, modelFields, modelTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]entities.Model, 0)
	for rows.Next() {
		var m entities.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}
