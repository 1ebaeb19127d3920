package repositories

import (
	"context"
	"errors"
	"fmt"

	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	catalogTable  = "equipment_catalog"
	catalogFields = "serial_number, brand, model, client_name, client_cif, client_departamento, " +
		"last_entry_date, last_calibration_data, created_at, updated_at"
)

type EquipmentCatalogRepositoryInterface interface {
	UpsertIntake(ctx context.Context, cat entities.EquipmentCatalog) error
	UpdateLastCalibration(ctx context.Context, serialNumber string, data []entities.SensorCalibration) error
	FindBySerial(ctx context.Context, serialNumber string) (*entities.EquipmentCatalog, error)
	List(ctx context.Context, limit uint64) ([]entities.EquipmentCatalog, error)
}

type equipmentCatalogRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentCatalogRepository(storage *pgxpool.Pool) EquipmentCatalogRepositoryInterface {
	return &equipmentCatalogRepository{storage: storage}
}

func scanCatalog(row pgx.Row) (*entities.EquipmentCatalog, error) {
	var c entities.EquipmentCatalog
	err := row.Scan(
		&c.SerialNumber, &c.Brand, &c.Model, &c.ClientName, &c.ClientCIF,
		&c.ClientDepartamento, &c.LastEntryDate, &c.LastCalibrationData,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment catalog: %w", err)
	}
	return &c, nil
}

// UpsertIntake refreshes the intake fields for a serial. A pure re-intake
// leaves last_calibration_data as it was.
func (r *equipmentCatalogRepository) UpsertIntake(ctx context.Context, cat entities.EquipmentCatalog) error {
	query := fmt.Sprintf(`INSERT INTO %s
		(serial_number, brand, model, client_name, client_cif, client_departamento, last_entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (serial_number) DO UPDATE SET
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			client_name = EXCLUDED.client_name,
			client_cif = EXCLUDED.client_cif,
			client_departamento = EXCLUDED.client_departamento,
			last_entry_date = EXCLUDED.last_entry_date,
			updated_at = NOW()`, catalogTable)

	_, err := r.storage.Exec(ctx, query,
		cat.SerialNumber, cat.Brand, cat.Model, cat.ClientName, cat.ClientCIF,
		cat.ClientDepartamento, cat.LastEntryDate,
	)
	return err
}

func (r *equipmentCatalogRepository) UpdateLastCalibration(ctx context.Context, serialNumber string, data []entities.SensorCalibration) error {
	query := fmt.Sprintf(`UPDATE %s SET last_calibration_data = $1, updated_at = NOW() WHERE serial_number = $2`, catalogTable)
	result, err := r.storage.Exec(ctx, query, data, serialNumber)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *equipmentCatalogRepository) FindBySerial(ctx context.Context, serialNumber string) (*entities.EquipmentCatalog, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE serial_number = $1`, catalogFields, catalogTable)
	return scanCatalog(r.storage.QueryRow(ctx, query, serialNumber))
}

func (r *equipmentCatalogRepository) List(ctx context.Context, limit uint64) ([]entities.EquipmentCatalog, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY serial_number LIMIT $1`, catalogFields, catalogTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.EquipmentCatalog, 0)
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}
