package repositories

import (
	"context"
	"errors"

	apperrors "calibration-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxCertificateSequence is the hard per-year ceiling. There is no rollover:
// the 100,000th request of a year fails.
const MaxCertificateSequence = 99999

type CertificateCounterRepositoryInterface interface {
	// Next reserves and returns the next sequence number for the year,
	// starting at 1. Concurrent callers never observe the same value.
	Next(ctx context.Context, year int) (int, error)
}

type certificateCounterRepository struct {
	storage *pgxpool.Pool
}

func NewCertificateCounterRepository(storage *pgxpool.Pool) CertificateCounterRepositoryInterface {
	return &certificateCounterRepository{storage: storage}
}

func (r *certificateCounterRepository) Next(ctx context.Context, year int) (int, error) {
	// Single-statement upsert: the increment is atomic on the counter row,
	// and the WHERE guard makes the ceiling a failed update instead of an
	// overflow.
	query := `INSERT INTO certificate_counters (year, counter) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE
		SET counter = certificate_counters.counter + 1
		WHERE certificate_counters.counter < $2
		RETURNING counter`

	var seq int
	err := r.storage.QueryRow(ctx, query, year, MaxCertificateSequence).Scan(&seq)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.ErrCounterExhausted
	}
	if err != nil {
		return 0, err
	}
	return seq, nil
}
