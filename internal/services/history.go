package services

import (
	"context"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	"calibration-system/internal/repositories"
	"calibration-system/pkg/types"

	"go.uber.org/zap"
)

type HistoryServiceInterface interface {
	GetEntry(ctx context.Context, id string) (*entities.CalibrationHistory, error)
	ListBySerial(ctx context.Context, serialNumber string) ([]entities.CalibrationHistory, error)
	Search(ctx context.Context, search dto.HistorySearchDTO, filter types.Filter) ([]entities.CalibrationHistory, uint64, error)
	Export(ctx context.Context, search dto.HistorySearchDTO) ([]byte, error)
}

type HistoryService struct {
	historyRepo repositories.CalibrationHistoryRepositoryInterface
	logger      *zap.Logger
}

func NewHistoryService(historyRepo repositories.CalibrationHistoryRepositoryInterface, logger *zap.Logger) *HistoryService {
	return &HistoryService{historyRepo: historyRepo, logger: logger}
}

func (s *HistoryService) GetEntry(ctx context.Context, id string) (*entities.CalibrationHistory, error) {
	return s.historyRepo.FindEntry(ctx, id)
}

func (s *HistoryService) ListBySerial(ctx context.Context, serialNumber string) ([]entities.CalibrationHistory, error) {
	return s.historyRepo.ListBySerial(ctx, serialNumber, listLimit)
}

func (s *HistoryService) Search(ctx context.Context, search dto.HistorySearchDTO, filter types.Filter) ([]entities.CalibrationHistory, uint64, error) {
	return s.historyRepo.Search(ctx, search, filter)
}

// Export renders the matching history entries as an XLSX workbook. The export
// ignores pagination on purpose, an audit pull wants the full match set.
func (s *HistoryService) Export(ctx context.Context, search dto.HistorySearchDTO) ([]byte, error) {
	entries, total, err := s.historyRepo.Search(ctx, search, types.Filter{})
	if err != nil {
		return nil, err
	}
	s.logger.Info("exporting calibration history", zap.Uint64("entries", total))
	return buildHistoryWorkbook(entries)
}
