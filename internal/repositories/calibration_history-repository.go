package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"
	"calibration-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	historyTable  = "calibration_history"
	historyFields = "id, equipment_id, serial_number, brand, model, client_name, client_cif, " +
		"client_departamento, calibration_data, spare_parts, calibration_date, technician, " +
		"internal_notes, delivery_note, certificate_number, created_at"
)

type CalibrationHistoryRepositoryInterface interface {
	AppendEntry(ctx context.Context, entry entities.CalibrationHistory) (*entities.CalibrationHistory, error)
	FindEntry(ctx context.Context, id string) (*entities.CalibrationHistory, error)
	ListBySerial(ctx context.Context, serialNumber string, limit uint64) ([]entities.CalibrationHistory, error)
	Search(ctx context.Context, search dto.HistorySearchDTO, filter types.Filter) ([]entities.CalibrationHistory, uint64, error)
	AttachDelivery(ctx context.Context, serialNumber, deliveryNote, certificateNumber string) error
}

type calibrationHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewCalibrationHistoryRepository(storage *pgxpool.Pool) CalibrationHistoryRepositoryInterface {
	return &calibrationHistoryRepository{storage: storage}
}

func scanHistory(row pgx.Row) (*entities.CalibrationHistory, error) {
	var h entities.CalibrationHistory
	err := row.Scan(
		&h.ID, &h.EquipmentID, &h.SerialNumber, &h.Brand, &h.Model, &h.ClientName,
		&h.ClientCIF, &h.ClientDepartamento, &h.CalibrationData, &h.SpareParts,
		&h.CalibrationDate, &h.Technician, &h.InternalNotes, &h.DeliveryNote,
		&h.CertificateNumber, &h.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan calibration history: %w", err)
	}
	return &h, nil
}

func (r *calibrationHistoryRepository) AppendEntry(ctx context.Context, entry entities.CalibrationHistory) (*entities.CalibrationHistory, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(id, equipment_id, serial_number, brand, model, client_name, client_cif, client_departamento,
		 calibration_data, spare_parts, calibration_date, technician, internal_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s`, historyTable, historyFields)

	row := r.storage.QueryRow(ctx, query,
		entry.ID, entry.EquipmentID, entry.SerialNumber, entry.Brand, entry.Model,
		entry.ClientName, entry.ClientCIF, entry.ClientDepartamento,
		entry.CalibrationData, entry.SpareParts, entry.CalibrationDate,
		entry.Technician, entry.InternalNotes,
	)
	return scanHistory(row)
}

func (r *calibrationHistoryRepository) FindEntry(ctx context.Context, id string) (*entities.CalibrationHistory, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, historyFields, historyTable)
	return scanHistory(r.storage.QueryRow(ctx, query, id))
}

func (r *calibrationHistoryRepository) ListBySerial(ctx context.Context, serialNumber string, limit uint64) ([]entities.CalibrationHistory, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE serial_number = $1 ORDER BY created_at DESC LIMIT $2`, historyFields, historyTable)
	rows, err := r.storage.Query(ctx, query, serialNumber, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHistory(rows)
}

func (r *calibrationHistoryRepository) Search(ctx context.Context, search dto.HistorySearchDTO, filter types.Filter) ([]entities.CalibrationHistory, uint64, error) {
	conditions := sq.And{}
	if search.SerialNumber != "" {
		conditions = append(conditions, sq.ILike{"serial_number": "%" + search.SerialNumber + "%"})
	}
	if search.ClientName != "" {
		conditions = append(conditions, sq.ILike{"client_name": "%" + search.ClientName + "%"})
	}
	if search.ClientCIF != "" {
		conditions = append(conditions, sq.Eq{"client_cif": search.ClientCIF})
	}
	if search.Technician != "" {
		conditions = append(conditions, sq.ILike{"technician": "%" + search.Technician + "%"})
	}
	if search.DateFrom != "" {
		conditions = append(conditions, sq.GtOrEq{"calibration_date": search.DateFrom})
	}
	if search.DateTo != "" {
		conditions = append(conditions, sq.LtOrEq{"calibration_date": search.DateTo})
	}

	countBuilder := sq.Select("COUNT(*)").From(historyTable).PlaceholderFormat(sq.Dollar)
	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.CalibrationHistory{}, 0, nil
	}

	builder := sq.Select(historyFields).
		From(historyTable).
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at DESC")
	if len(conditions) > 0 {
		builder = builder.Where(conditions)
	}
	if filter.WithPagination {
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := collectHistory(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// AttachDelivery backfills delivery metadata onto the entries for a serial
// that have not been tied to a certificate yet. Entries already carrying a
// certificate number belong to earlier workshop visits and stay untouched.
func (r *calibrationHistoryRepository) AttachDelivery(ctx context.Context, serialNumber, deliveryNote, certificateNumber string) error {
	query := fmt.Sprintf(`UPDATE %s SET delivery_note = $1, certificate_number = $2
		WHERE serial_number = $3 AND certificate_number IS NULL`, historyTable)
	_, err := r.storage.Exec(ctx, query, deliveryNote, certificateNumber, serialNumber)
	return err
}

func collectHistory(rows pgx.Rows) ([]entities.CalibrationHistory, error) {
	list := make([]entities.CalibrationHistory, 0)
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *h)
	}
	return list, rows.Err()
}
