package services

import (
	"bytes"
	"context"
	"testing"

	"calibration-system/internal/dto"
	"calibration-system/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestHistorySearchByTechnician(t *testing.T) {
	equipmentSvc, _, historyRepo, _, _ := newTestEquipmentService()
	historySvc := NewHistoryService(historyRepo, zap.NewNop())
	ctx := context.Background()

	_, err := equipmentSvc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = equipmentSvc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)

	entries, total, err := historySvc.Search(ctx,
		dto.HistorySearchDTO{Technician: "Miguel Ángel"}, types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "SN-001", entries[0].SerialNumber)

	_, total, err = historySvc.Search(ctx,
		dto.HistorySearchDTO{Technician: "nadie"}, types.Filter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestHistoryExportProducesWorkbook(t *testing.T) {
	equipmentSvc, _, historyRepo, _, _ := newTestEquipmentService()
	historySvc := NewHistoryService(historyRepo, zap.NewNop())
	ctx := context.Background()

	_, err := equipmentSvc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = equipmentSvc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)

	content, err := historySvc.Export(ctx, dto.HistorySearchDTO{})
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Nº Serie", rows[0][0])
	assert.Equal(t, "SN-001", rows[1][0])
}

func TestHistoryExportWithNoMatches(t *testing.T) {
	_, _, historyRepo, _, _ := newTestEquipmentService()
	historySvc := NewHistoryService(historyRepo, zap.NewNop())

	content, err := historySvc.Export(context.Background(), dto.HistorySearchDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
