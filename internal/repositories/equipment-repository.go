package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"calibration-system/internal/entities"
	"calibration-system/pkg/constants"
	apperrors "calibration-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipmentTable  = "equipment"
	equipmentFields = "id, serial_number, brand, model, client_name, client_cif, client_departamento, " +
		"observations, entry_date, status, calibration_data, spare_parts, calibration_date, " +
		"technician, internal_notes, delivery_note, delivery_location, delivery_date, " +
		"certificate_number, created_at, updated_at"
)

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error)
	FindActiveBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error)
	FindCalibratedBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error)
	SetCalibration(ctx context.Context, id string, data []entities.SensorCalibration, spareParts []entities.SparePart, calibrationDate, technician, internalNotes string) (*entities.Equipment, error)
	SetDelivery(ctx context.Context, id string, deliveryNote, deliveryLocation, deliveryDate, certificateNumber string) (*entities.Equipment, error)
	ListByStatus(ctx context.Context, status string, limit uint64) ([]entities.Equipment, error)
}

type equipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.SerialNumber, &e.Brand, &e.Model, &e.ClientName, &e.ClientCIF,
		&e.ClientDepartamento, &e.Observations, &e.EntryDate, &e.Status,
		&e.CalibrationData, &e.SpareParts, &e.CalibrationDate, &e.Technician,
		&e.InternalNotes, &e.DeliveryNote, &e.DeliveryLocation, &e.DeliveryDate,
		&e.CertificateNumber, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return &e, nil
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(id, serial_number, brand, model, client_name, client_cif, client_departamento, observations, entry_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, equipmentTable, equipmentFields)

	row := r.storage.QueryRow(ctx, query,
		eq.ID, eq.SerialNumber, eq.Brand, eq.Model, eq.ClientName, eq.ClientCIF,
		eq.ClientDepartamento, eq.Observations, eq.EntryDate, eq.Status,
	)
	created, err := scanEquipment(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Backstop for the partial unique index on active serials.
			return nil, apperrors.ErrEquipmentInWorkshop
		}
		return nil, err
	}
	return created, nil
}

func (r *equipmentRepository) FindActiveBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE serial_number = $1 AND status <> $2`, equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, serialNumber, constants.StatusDelivered))
}

func (r *equipmentRepository) FindCalibratedBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE serial_number = $1 AND status = $2`, equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, serialNumber, constants.StatusCalibrated))
}

func (r *equipmentRepository) SetCalibration(ctx context.Context, id string, data []entities.SensorCalibration, spareParts []entities.SparePart, calibrationDate, technician, internalNotes string) (*entities.Equipment, error) {
	query, args, err := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Set("status", constants.StatusCalibrated).
		Set("calibration_data", data).
		Set("spare_parts", spareParts).
		Set("calibration_date", calibrationDate).
		Set("technician", technician).
		Set("internal_notes", internalNotes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) SetDelivery(ctx context.Context, id string, deliveryNote, deliveryLocation, deliveryDate, certificateNumber string) (*entities.Equipment, error) {
	query, args, err := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Set("status", constants.StatusDelivered).
		Set("delivery_note", deliveryNote).
		Set("delivery_location", deliveryLocation).
		Set("delivery_date", deliveryDate).
		Set("certificate_number", certificateNumber).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) ListByStatus(ctx context.Context, status string, limit uint64) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE status = $1 ORDER BY created_at DESC LIMIT $2`, equipmentFields, equipmentTable)
	rows, err := r.storage.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *eq)
	}
	return list, rows.Err()
}
