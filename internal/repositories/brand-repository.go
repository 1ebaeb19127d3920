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
	brandTable  = "brands"
	brandFields = "id, name, created_at"
)

type BrandRepositoryInterface interface {
	CreateBrand(ctx context.Context, brand entities.Brand) (*entities.Brand, error)
	GetBrands(ctx context.Context, limit uint64) ([]entities.Brand, error)
}

type brandRepository struct {
	storage *pgxpool.Pool
}

func NewBrandRepository(storage *pgxpool.Pool) BrandRepositoryInterface {
	return &brandRepository{storage: storage}
}

func (r *brandRepository) CreateBrand(ctx context.Context, brand entities.Brand) (*entities.Brand, error) {
	query := fmt.Sprintf(`INSERT INTO %s (id, name) VALUES ($1, $2) RETURNING %s`, brandTable, brandFields)
	var b entities.Brand
	err := r.storage.QueryRow(ctx, query, brand.ID, brand.Name).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &b, nil
}

func (r *brandRepository) GetBrands(ctx context.Context, limit uint64) ([]entities.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at LIMIT $1`, brandFields, brandTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]entities.Brand, 0)
	for rows.Next() {
		var b entities.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}
