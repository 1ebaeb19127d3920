package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	masterTable  = "equipment_master"
	masterFields = "id, serial_number, brand, model, client_name, client_cif, client_departamento, " +
		"default_sensors, notes, created_at, updated_at"
)

type EquipmentMasterRepositoryInterface interface {
	CreateMaster(ctx context.Context, m entities.EquipmentMaster) (*entities.EquipmentMaster, error)
	FindMaster(ctx context.Context, id string) (*entities.EquipmentMaster, error)
	FindMasterBySerial(ctx context.Context, serialNumber string) (*entities.EquipmentMaster, error)
	ListMasters(ctx context.Context, limit uint64) ([]entities.EquipmentMaster, error)
	UpdateMaster(ctx context.Context, id string, payload dto.UpdateEquipmentMasterDTO) (*entities.EquipmentMaster, error)
	DeleteMaster(ctx context.Context, id string) error
}

type equipmentMasterRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentMasterRepository(storage *pgxpool.Pool) EquipmentMasterRepositoryInterface {
	return &equipmentMasterRepository{storage: storage}
}

func scanMaster(row pgx.Row) (*entities.EquipmentMaster, error) {
	var m entities.EquipmentMaster
	err := row.Scan(
		&m.ID, &m.SerialNumber, &m.Brand, &m.Model, &m.ClientName, &m.ClientCIF,
		&m.ClientDepartamento, &m.DefaultSensors, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment master: %w", err)
	}
	return &m, nil
}

func (r *equipmentMasterRepository) CreateMaster(ctx context.Context, m entities.EquipmentMaster) (*entities.EquipmentMaster, error) {
	if m.DefaultSensors == nil {
		m.DefaultSensors = []string{}
	}
	query := fmt.Sprintf(`INSERT INTO %s
		(id, serial_number, brand, model, client_name, client_cif, client_departamento, default_sensors, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, masterTable, masterFields)

	row := r.storage.QueryRow(ctx, query,
		m.ID, m.SerialNumber, m.Brand, m.Model, m.ClientName, m.ClientCIF,
		m.ClientDepartamento, m.DefaultSensors, m.Notes,
	)
	created, err := scanMaster(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *equipmentMasterRepository) FindMaster(ctx context.Context, id string) (*entities.EquipmentMaster, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, masterFields, masterTable)
	return scanMaster(r.storage.QueryRow(ctx, query, id))
}

func (r *equipmentMasterRepository) FindMasterBySerial(ctx context.Context, serialNumber string) (*entities.EquipmentMaster, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE serial_number = $1`, masterFields, masterTable)
	return scanMaster(r.storage.QueryRow(ctx, query, serialNumber))
}

func (r *equipmentMasterRepository) ListMasters(ctx context.Context, limit uint64) ([]entities.EquipmentMaster, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY serial_number LIMIT $1`, masterFields, masterTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.EquipmentMaster, 0)
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func (r *equipmentMasterRepository) UpdateMaster(ctx context.Context, id string, payload dto.UpdateEquipmentMasterDTO) (*entities.EquipmentMaster, error) {
	updateBuilder := sq.Update(masterTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Brand != nil {
		updateBuilder = updateBuilder.Set("brand", *payload.Brand)
		hasChanges = true
	}
	if payload.Model != nil {
		updateBuilder = updateBuilder.Set("model", *payload.Model)
		hasChanges = true
	}
	if payload.ClientName != nil {
		updateBuilder = updateBuilder.Set("client_name", *payload.ClientName)
		hasChanges = true
	}
	if payload.ClientCIF != nil {
		updateBuilder = updateBuilder.Set("client_cif", *payload.ClientCIF)
		hasChanges = true
	}
	if payload.ClientDepartamento != nil {
		updateBuilder = updateBuilder.Set("client_departamento", *payload.ClientDepartamento)
		hasChanges = true
	}
	if payload.DefaultSensors != nil {
		updateBuilder = updateBuilder.Set("default_sensors", *payload.DefaultSensors)
		hasChanges = true
	}
	if payload.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *payload.Notes)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindMaster(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + masterFields).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaster(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentMasterRepository) DeleteMaster(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, masterTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
