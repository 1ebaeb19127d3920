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
	userTable  = "users"
	userFields = "id, username, full_name, password, created_at"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	FindUser(ctx context.Context, id int) (*entities.User, error)
}

type userRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`INSERT INTO %s (username, full_name, password) VALUES ($1, $2, $3) RETURNING %s`, userTable, userFields)
	created, err := scanUser(r.storage.QueryRow(ctx, query, user.Username, user.FullName, user.Password))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE username = $1`, userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, username))
}

func (r *userRepository) FindUser(ctx context.Context, id int) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}
