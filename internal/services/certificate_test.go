package services

import (
	"context"
	"testing"

	apperrors "calibration-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCertificateForPendingEquipmentIsRejected(t *testing.T) {
	equipmentSvc, equipmentRepo, historyRepo, _, _ := newTestEquipmentService()
	certSvc := NewCertificateService(equipmentRepo, historyRepo, zap.NewNop())
	ctx := context.Background()

	_, err := equipmentSvc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)

	_, err = certSvc.GenerateForSerial(ctx, "SN-001")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCertificateForCalibratedEquipment(t *testing.T) {
	equipmentSvc, equipmentRepo, historyRepo, _, _ := newTestEquipmentService()
	certSvc := NewCertificateService(equipmentRepo, historyRepo, zap.NewNop())
	ctx := context.Background()

	_, err := equipmentSvc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = equipmentSvc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)

	content, err := certSvc.GenerateForSerial(ctx, "SN-001")
	require.NoError(t, err)
	assert.True(t, len(content) > 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestCertificateFallsBackToHistoryAfterDelivery(t *testing.T) {
	equipmentSvc, equipmentRepo, historyRepo, _, _ := newTestEquipmentService()
	certSvc := NewCertificateService(equipmentRepo, historyRepo, zap.NewNop())
	ctx := context.Background()

	_, err := equipmentSvc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = equipmentSvc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)
	_, err = equipmentSvc.DeliverEquipment(ctx, deliveryPayload("SN-001"))
	require.NoError(t, err)

	content, err := certSvc.GenerateForSerial(ctx, "SN-001")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestCertificateForUnknownSerialIsNotFound(t *testing.T) {
	_, equipmentRepo, historyRepo, _, _ := newTestEquipmentService()
	certSvc := NewCertificateService(equipmentRepo, historyRepo, zap.NewNop())

	_, err := certSvc.GenerateForSerial(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCertificateForHistoryEntry(t *testing.T) {
	equipmentSvc, equipmentRepo, historyRepo, _, _ := newTestEquipmentService()
	certSvc := NewCertificateService(equipmentRepo, historyRepo, zap.NewNop())
	ctx := context.Background()

	_, err := equipmentSvc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = equipmentSvc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)
	require.Len(t, historyRepo.entries, 1)

	content, err := certSvc.GenerateForHistoryEntry(ctx, historyRepo.entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}
