package services

import (
	"context"
	"errors"
	"fmt"

	"calibration-system/internal/entities"
	"calibration-system/internal/pdf"
	"calibration-system/internal/repositories"
	"calibration-system/pkg/constants"
	apperrors "calibration-system/pkg/errors"

	"go.uber.org/zap"
)

type CertificateServiceInterface interface {
	GenerateForSerial(ctx context.Context, serialNumber string) ([]byte, error)
	GenerateForHistoryEntry(ctx context.Context, id string) ([]byte, error)
}

type CertificateService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	historyRepo   repositories.CalibrationHistoryRepositoryInterface
	logger        *zap.Logger
}

func NewCertificateService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	historyRepo repositories.CalibrationHistoryRepositoryInterface,
	logger *zap.Logger,
) *CertificateService {
	return &CertificateService{equipmentRepo: equipmentRepo, historyRepo: historyRepo, logger: logger}
}

// GenerateForSerial renders the certificate for a serial's latest calibration.
// A calibrated unit still in the workshop renders from the live record; once
// the unit is delivered the ledger entry takes over, so certificates stay
// printable after the workshop visit ends.
func (s *CertificateService) GenerateForSerial(ctx context.Context, serialNumber string) ([]byte, error) {
	eq, err := s.equipmentRepo.FindActiveBySerial(ctx, serialNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if eq != nil {
		if eq.Status != constants.StatusCalibrated {
			return nil, fmt.Errorf("equipment %q has not been calibrated yet: %w",
				serialNumber, apperrors.ErrBadRequest)
		}
		return pdf.GenerateCertificate(snapshotFromEquipment(eq))
	}

	entries, err := s.historyRepo.ListBySerial(ctx, serialNumber, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return pdf.GenerateCertificate(snapshotFromHistory(&entries[0]))
}

// GenerateForHistoryEntry renders the certificate for one specific ledger
// entry, regardless of what happened to the unit since.
func (s *CertificateService) GenerateForHistoryEntry(ctx context.Context, id string) ([]byte, error) {
	entry, err := s.historyRepo.FindEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	return pdf.GenerateCertificate(snapshotFromHistory(entry))
}

func snapshotFromEquipment(eq *entities.Equipment) pdf.CertificateSnapshot {
	return pdf.CertificateSnapshot{
		CertificateNumber:  eq.CertificateNumber.String,
		SerialNumber:       eq.SerialNumber,
		Brand:              eq.Brand,
		Model:              eq.Model,
		ClientName:         eq.ClientName,
		ClientCIF:          eq.ClientCIF,
		ClientDepartamento: eq.ClientDepartamento,
		EntryDate:          eq.EntryDate,
		CalibrationDate:    eq.CalibrationDate.String,
		Technician:         eq.Technician.String,
		Observations:       eq.Observations,
		Sensors:            eq.CalibrationData,
		SpareParts:         eq.SpareParts,
	}
}

func snapshotFromHistory(entry *entities.CalibrationHistory) pdf.CertificateSnapshot {
	return pdf.CertificateSnapshot{
		CertificateNumber:  entry.CertificateNumber.String,
		SerialNumber:       entry.SerialNumber,
		Brand:              entry.Brand,
		Model:              entry.Model,
		ClientName:         entry.ClientName,
		ClientCIF:          entry.ClientCIF,
		ClientDepartamento: entry.ClientDepartamento,
		CalibrationDate:    entry.CalibrationDate,
		Technician:         entry.Technician,
		Sensors:            entry.CalibrationData,
		SpareParts:         entry.SpareParts,
	}
}
