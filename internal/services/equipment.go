package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	"calibration-system/internal/repositories"
	"calibration-system/pkg/constants"
	apperrors "calibration-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// listLimit caps status listings. There is no pagination contract for the
// workshop views, only a generous ceiling.
const listLimit = 1000

// FormatCertificateNumber renders a certificate number as YY-NNNNN.
func FormatCertificateNumber(year, sequence int) string {
	return fmt.Sprintf("%02d-%05d", year%100, sequence)
}

type EquipmentServiceInterface interface {
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	GetEquipmentBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error)
	CalibrateEquipment(ctx context.Context, serialNumber string, payload dto.CalibrationUpdateDTO) (*entities.Equipment, error)
	DeliverEquipment(ctx context.Context, payload dto.DeliveryUpdateDTO) (*dto.DeliveryResultDTO, error)
	ListEquipmentByStatus(ctx context.Context, status string) ([]entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	historyRepo   repositories.CalibrationHistoryRepositoryInterface
	catalogRepo   repositories.EquipmentCatalogRepositoryInterface
	counterRepo   repositories.CertificateCounterRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	historyRepo repositories.CalibrationHistoryRepositoryInterface,
	catalogRepo repositories.EquipmentCatalogRepositoryInterface,
	counterRepo repositories.CertificateCounterRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
		catalogRepo:   catalogRepo,
		counterRepo:   counterRepo,
		logger:        logger,
	}
}

// CreateEquipment registers an intake. At most one non-delivered instance may
// exist per serial number; delivered instances of the same serial are prior
// workshop visits and do not block a new intake.
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	existing, err := s.equipmentRepo.FindActiveBySerial(ctx, payload.SerialNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("equipment with serial number %q is already in the workshop (status %s): %w",
			payload.SerialNumber, existing.Status, apperrors.ErrConflict)
	}

	eq := entities.Equipment{
		ID:                 uuid.NewString(),
		SerialNumber:       payload.SerialNumber,
		Brand:              payload.Brand,
		Model:              payload.Model,
		ClientName:         payload.ClientName,
		ClientCIF:          payload.ClientCIF,
		ClientDepartamento: payload.ClientDepartamento,
		Observations:       payload.Observations,
		EntryDate:          payload.EntryDate,
		Status:             constants.StatusPending,
	}

	created, err := s.equipmentRepo.CreateEquipment(ctx, eq)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.String("serial_number", payload.SerialNumber), zap.Error(err))
		return nil, err
	}

	// Catalog upsert happens only after the equipment write succeeded.
	cat := entities.EquipmentCatalog{
		SerialNumber:       created.SerialNumber,
		Brand:              created.Brand,
		Model:              created.Model,
		ClientName:         created.ClientName,
		ClientCIF:          created.ClientCIF,
		ClientDepartamento: created.ClientDepartamento,
		LastEntryDate:      created.EntryDate,
	}
	if err := s.catalogRepo.UpsertIntake(ctx, cat); err != nil {
		s.logger.Error("equipment created but catalog upsert failed",
			zap.String("serial_number", created.SerialNumber), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment registered",
		zap.String("serial_number", created.SerialNumber), zap.String("id", created.ID))
	return created, nil
}

func (s *EquipmentService) GetEquipmentBySerial(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindActiveBySerial(ctx, serialNumber)
}

// CalibrateEquipment records calibration results for the active instance of a
// serial. Unknown and already-delivered serials are indistinguishable to the
// caller: both are NotFound. Re-calibrating a calibrated unit overwrites the
// equipment fields in place and appends a second history entry.
func (s *EquipmentService) CalibrateEquipment(ctx context.Context, serialNumber string, payload dto.CalibrationUpdateDTO) (*entities.Equipment, error) {
	eq, err := s.equipmentRepo.FindActiveBySerial(ctx, serialNumber)
	if err != nil {
		return nil, err
	}

	data := dto.SensorCalibrationsToEntities(payload.CalibrationData)
	spareParts := dto.SparePartsToEntities(payload.SpareParts)

	updated, err := s.equipmentRepo.SetCalibration(ctx, eq.ID, data, spareParts,
		payload.CalibrationDate, payload.Technician, payload.InternalNotes)
	if err != nil {
		s.logger.Error("failed to store calibration", zap.String("serial_number", serialNumber), zap.Error(err))
		return nil, err
	}

	entry := entities.CalibrationHistory{
		ID:                 uuid.NewString(),
		EquipmentID:        updated.ID,
		SerialNumber:       updated.SerialNumber,
		Brand:              updated.Brand,
		Model:              updated.Model,
		ClientName:         updated.ClientName,
		ClientCIF:          updated.ClientCIF,
		ClientDepartamento: updated.ClientDepartamento,
		CalibrationData:    data,
		SpareParts:         spareParts,
		CalibrationDate:    payload.CalibrationDate,
		Technician:         payload.Technician,
		InternalNotes:      null.NewString(payload.InternalNotes, payload.InternalNotes != ""),
	}
	if _, err := s.historyRepo.AppendEntry(ctx, entry); err != nil {
		s.logger.Error("equipment calibrated but history append failed",
			zap.String("serial_number", serialNumber), zap.Error(err))
		return nil, err
	}

	if err := s.catalogRepo.UpdateLastCalibration(ctx, serialNumber, data); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No catalog row means the unit predates the catalog. Not fatal.
			s.logger.Warn("no catalog row for calibrated serial", zap.String("serial_number", serialNumber))
		} else {
			s.logger.Error("equipment calibrated but catalog update failed",
				zap.String("serial_number", serialNumber), zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("equipment calibrated",
		zap.String("serial_number", serialNumber),
		zap.Int("sensors", len(data)),
		zap.String("technician", payload.Technician))
	return updated, nil
}

// DeliverEquipment finalizes a batch of returns. Serials without a calibrated
// instance are skipped silently; the result reports the attempted count and
// the serials that actually transitioned. Each delivered unit consumes one
// certificate number.
func (s *EquipmentService) DeliverEquipment(ctx context.Context, payload dto.DeliveryUpdateDTO) (*dto.DeliveryResultDTO, error) {
	year := time.Now().Year()
	delivered := make([]string, 0, len(payload.SerialNumbers))

	for _, serial := range payload.SerialNumbers {
		eq, err := s.equipmentRepo.FindCalibratedBySerial(ctx, serial)
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Info("delivery skipped serial without calibrated instance", zap.String("serial_number", serial))
			continue
		}
		if err != nil {
			return nil, err
		}

		seq, err := s.counterRepo.Next(ctx, year)
		if err != nil {
			s.logger.Error("certificate number allocation failed", zap.Int("year", year), zap.Error(err))
			return nil, err
		}
		certNumber := FormatCertificateNumber(year, seq)

		if _, err := s.equipmentRepo.SetDelivery(ctx, eq.ID,
			payload.DeliveryNote, payload.DeliveryLocation, payload.DeliveryDate, certNumber); err != nil {
			s.logger.Error("failed to mark equipment delivered",
				zap.String("serial_number", serial), zap.Error(err))
			return nil, err
		}

		if err := s.historyRepo.AttachDelivery(ctx, serial, payload.DeliveryNote, certNumber); err != nil {
			s.logger.Error("equipment delivered but history patch failed",
				zap.String("serial_number", serial), zap.Error(err))
			return nil, err
		}

		delivered = append(delivered, serial)
		s.logger.Info("equipment delivered",
			zap.String("serial_number", serial), zap.String("certificate_number", certNumber))
	}

	return &dto.DeliveryResultDTO{
		Attempted: len(payload.SerialNumbers),
		Serials:   delivered,
	}, nil
}

func (s *EquipmentService) ListEquipmentByStatus(ctx context.Context, status string) ([]entities.Equipment, error) {
	if !constants.IsValidStatus(status) {
		return nil, fmt.Errorf("unknown equipment status %q: %w", status, apperrors.ErrBadRequest)
	}
	return s.equipmentRepo.ListByStatus(ctx, status, listLimit)
}
