package services

import (
	"context"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	"calibration-system/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MasterService manages the equipment master records, the curated per-serial
// defaults that prefill intake and calibration forms. The catalog is the
// automatic counterpart maintained by the lifecycle itself, so it is
// read-only here.
type MasterServiceInterface interface {
	CreateMaster(ctx context.Context, payload dto.CreateEquipmentMasterDTO) (*entities.EquipmentMaster, error)
	GetMaster(ctx context.Context, id string) (*entities.EquipmentMaster, error)
	GetMasterBySerial(ctx context.Context, serialNumber string) (*entities.EquipmentMaster, error)
	ListMasters(ctx context.Context) ([]entities.EquipmentMaster, error)
	UpdateMaster(ctx context.Context, id string, payload dto.UpdateEquipmentMasterDTO) (*entities.EquipmentMaster, error)
	DeleteMaster(ctx context.Context, id string) error
	GetCatalogEntry(ctx context.Context, serialNumber string) (*entities.EquipmentCatalog, error)
	ListCatalog(ctx context.Context) ([]entities.EquipmentCatalog, error)
}

type MasterService struct {
	masterRepo  repositories.EquipmentMasterRepositoryInterface
	catalogRepo repositories.EquipmentCatalogRepositoryInterface
	logger      *zap.Logger
}

func NewMasterService(
	masterRepo repositories.EquipmentMasterRepositoryInterface,
	catalogRepo repositories.EquipmentCatalogRepositoryInterface,
	logger *zap.Logger,
) *MasterService {
	return &MasterService{masterRepo: masterRepo, catalogRepo: catalogRepo, logger: logger}
}

func (s *MasterService) CreateMaster(ctx context.Context, payload dto.CreateEquipmentMasterDTO) (*entities.EquipmentMaster, error) {
	m := entities.EquipmentMaster{
		ID:                 uuid.NewString(),
		SerialNumber:       payload.SerialNumber,
		Brand:              payload.Brand,
		Model:              payload.Model,
		ClientName:         payload.ClientName,
		ClientCIF:          payload.ClientCIF,
		ClientDepartamento: payload.ClientDepartamento,
		DefaultSensors:     payload.DefaultSensors,
		Notes:              payload.Notes,
	}
	created, err := s.masterRepo.CreateMaster(ctx, m)
	if err != nil {
		return nil, err
	}
	s.logger.Info("equipment master created", zap.String("serial_number", created.SerialNumber))
	return created, nil
}

func (s *MasterService) GetMaster(ctx context.Context, id string) (*entities.EquipmentMaster, error) {
	return s.masterRepo.FindMaster(ctx, id)
}

func (s *MasterService) GetMasterBySerial(ctx context.Context, serialNumber string) (*entities.EquipmentMaster, error) {
	return s.masterRepo.FindMasterBySerial(ctx, serialNumber)
}

func (s *MasterService) ListMasters(ctx context.Context) ([]entities.EquipmentMaster, error) {
	return s.masterRepo.ListMasters(ctx, listLimit)
}

func (s *MasterService) UpdateMaster(ctx context.Context, id string, payload dto.UpdateEquipmentMasterDTO) (*entities.EquipmentMaster, error) {
	return s.masterRepo.UpdateMaster(ctx, id, payload)
}

func (s *MasterService) DeleteMaster(ctx context.Context, id string) error {
	if err := s.masterRepo.DeleteMaster(ctx, id); err != nil {
		return err
	}
	s.logger.Info("equipment master deleted", zap.String("id", id))
	return nil
}

func (s *MasterService) GetCatalogEntry(ctx context.Context, serialNumber string) (*entities.EquipmentCatalog, error) {
	return s.catalogRepo.FindBySerial(ctx, serialNumber)
}

func (s *MasterService) ListCatalog(ctx context.Context) ([]entities.EquipmentCatalog, error) {
	return s.catalogRepo.List(ctx, listLimit)
}
