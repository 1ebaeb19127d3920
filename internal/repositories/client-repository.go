package repositories

import (
	"context"
	"errors"
	"fmt"

	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	clientTable  = "clients"
	clientFields = "id, name, cif, departamentos, created_at"
)

type ClientRepositoryInterface interface {
	CreateClient(ctx context.Context, client entities.Client) (*entities.Client, error)
	GetClients(ctx context.Context, limit uint64) ([]entities.Client, error)
	FindClientByCIF(ctx context.Context, cif string) (*entities.Client, error)
}

type clientRepository struct {
	storage *pgxpool.Pool
}

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return &clientRepository{storage: storage}
}

func (r *clientRepository) CreateClient(ctx context.Context, client entities.Client) (*entities.Client, error) {
	if client.Departamentos == nil {
		client.Departamentos = []string{}
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, name, cif, departamentos) VALUES ($1, $2, $3, $4) RETURNING %s`, clientTable, clientFields)
	var c entities.Client
	err := r.storage.QueryRow(ctx, query, client.ID, client.Name, client.CIF, client.Departamentos).
		Scan(&c.ID, &c.Name, &c.CIF, &c.Departamentos, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) GetClients(ctx context.Context, limit uint64) ([]entities.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at LIMIT $1`, clientFields, clientTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]entities.Client, 0)
	for rows.Next() {
		var c entities.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CIF, &c.Departamentos, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) FindClientByCIF(ctx context.Context, cif string) (*entities.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE cif = $1`, clientFields, clientTable)
	var c entities.Client
	err := r.storage.QueryRow(ctx, query, cif).Scan(&c.ID, &c.Name, &c.CIF, &c.Departamentos, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
