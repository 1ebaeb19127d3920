package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"calibration-system/internal/dto"
	"calibration-system/pkg/constants"
	apperrors "calibration-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEquipmentService() (*EquipmentService, *fakeEquipmentRepo, *fakeHistoryRepo, *fakeCatalogRepo, *fakeCounterRepo) {
	equipmentRepo := newFakeEquipmentRepo()
	historyRepo := &fakeHistoryRepo{}
	catalogRepo := newFakeCatalogRepo()
	counterRepo := newFakeCounterRepo()
	svc := NewEquipmentService(equipmentRepo, historyRepo, catalogRepo, counterRepo, zap.NewNop())
	return svc, equipmentRepo, historyRepo, catalogRepo, counterRepo
}

func intakePayload(serial string) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		Brand:              "Dräger",
		Model:              "X-am 2500",
		ClientName:         "Bodegas del Norte S.L.",
		ClientCIF:          "B12345678",
		ClientDepartamento: "Mantenimiento",
		SerialNumber:       serial,
		Observations:       "pantalla rayada",
		EntryDate:          "2026-03-02",
	}
}

func calibrationPayload() dto.CalibrationUpdateDTO {
	return dto.CalibrationUpdateDTO{
		CalibrationData: []dto.SensorCalibrationDTO{
			{Sensor: "O2", PreAlarm: "19.5", Alarm: "23.0", CalibrationValue: "20.9", ValorZero: "0.0", ValorSpan: "20.9", CalibrationBottle: "BT-114", Approved: true},
			{Sensor: "CO", PreAlarm: "25", Alarm: "50", CalibrationValue: "100", ValorZero: "0", ValorSpan: "99", CalibrationBottle: "BT-114", Approved: true},
		},
		SpareParts:      []dto.SparePartDTO{{Description: "filtro de polvo", Reference: "FP-22", Warranty: true}},
		CalibrationDate: "2026-03-05",
		Technician:      "Miguel Ángel",
		InternalNotes:   "sensor CO al límite",
	}
}

func deliveryPayload(serials ...string) dto.DeliveryUpdateDTO {
	return dto.DeliveryUpdateDTO{
		SerialNumbers:    serials,
		DeliveryNote:     "ALB-2026-0042",
		DeliveryLocation: "taller central",
		DeliveryDate:     "2026-03-10",
	}
}

func TestCreateEquipmentStartsPending(t *testing.T) {
	svc, _, _, catalogRepo, _ := newTestEquipmentService()

	created, err := svc.CreateEquipment(context.Background(), intakePayload("SN-001"))
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, created.Status)
	assert.NotEmpty(t, created.ID)

	cat, err := catalogRepo.FindBySerial(context.Background(), "SN-001")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", cat.LastEntryDate)
	assert.Empty(t, cat.LastCalibrationData)
}

func TestCreateEquipmentRejectsActiveDuplicate(t *testing.T) {
	svc, _, _, _, _ := newTestEquipmentService()
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)

	_, err = svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), constants.StatusPending)
}

func TestCreateEquipmentAllowsReintakeAfterDelivery(t *testing.T) {
	svc, _, _, _, _ := newTestEquipmentService()
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = svc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)
	_, err = svc.DeliverEquipment(ctx, deliveryPayload("SN-001"))
	require.NoError(t, err)

	created, err := svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, created.Status)
}

func TestCalibrateUnknownSerialIsNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestEquipmentService()

	_, err := svc.CalibrateEquipment(context.Background(), "missing", calibrationPayload())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCalibrateRecordsResultAndAppendsHistory(t *testing.T) {
	svc, _, historyRepo, catalogRepo, _ := newTestEquipmentService()
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)

	updated, err := svc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCalibrated, updated.Status)
	assert.Len(t, updated.CalibrationData, 2)
	assert.Equal(t, "Miguel Ángel", updated.Technician.String)

	require.Len(t, historyRepo.entries, 1)
	entry := historyRepo.entries[0]
	assert.Equal(t, updated.ID, entry.EquipmentID)
	assert.Equal(t, "SN-001", entry.SerialNumber)
	assert.False(t, entry.CertificateNumber.Valid)

	cat, err := catalogRepo.FindBySerial(ctx, "SN-001")
	require.NoError(t, err)
	assert.Len(t, cat.LastCalibrationData, 2)
}

func TestRecalibrationAppendsSecondHistoryEntry(t *testing.T) {
	svc, _, historyRepo, _, _ := newTestEquipmentService()
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)

	_, err = svc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)

	second := calibrationPayload()
	second.CalibrationDate = "2026-03-06"
	_, err = svc.CalibrateEquipment(ctx, "SN-001", second)
	require.NoError(t, err)

	assert.Len(t, historyRepo.entries, 2)
}

func TestDeliverAssignsSequentialCertificates(t *testing.T) {
	svc, _, historyRepo, _, _ := newTestEquipmentService()
	ctx := context.Background()

	for _, serial := range []string{"SN-001", "SN-002"} {
		_, err := svc.CreateEquipment(ctx, intakePayload(serial))
		require.NoError(t, err)
		_, err = svc.CalibrateEquipment(ctx, serial, calibrationPayload())
		require.NoError(t, err)
	}

	res, err := svc.DeliverEquipment(ctx, deliveryPayload("SN-001", "SN-002"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, []string{"SN-001", "SN-002"}, res.Serials)

	yy := time.Now().Year() % 100
	wantFirst := fmt.Sprintf("%02d-00001", yy)
	wantSecond := fmt.Sprintf("%02d-00002", yy)

	certs := make(map[string]string)
	for _, entry := range historyRepo.entries {
		certs[entry.SerialNumber] = entry.CertificateNumber.String
	}
	assert.Equal(t, wantFirst, certs["SN-001"])
	assert.Equal(t, wantSecond, certs["SN-002"])
}

func TestDeliverSkipsNonCalibratedSilently(t *testing.T) {
	svc, _, _, _, counterRepo := newTestEquipmentService()
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, intakePayload("SN-PENDING"))
	require.NoError(t, err)

	_, err = svc.CreateEquipment(ctx, intakePayload("SN-OK"))
	require.NoError(t, err)
	_, err = svc.CalibrateEquipment(ctx, "SN-OK", calibrationPayload())
	require.NoError(t, err)

	res, err := svc.DeliverEquipment(ctx, deliveryPayload("SN-PENDING", "SN-OK", "SN-GHOST"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, []string{"SN-OK"}, res.Serials)

	// Skipped serials must not burn certificate numbers.
	assert.Equal(t, 1, counterRepo.counters[time.Now().Year()])
}

func TestDeliverFailsWhenCounterExhausted(t *testing.T) {
	svc, _, _, _, counterRepo := newTestEquipmentService()
	ctx := context.Background()
	counterRepo.counters[time.Now().Year()] = counterRepo.ceiling

	_, err := svc.CreateEquipment(ctx, intakePayload("SN-001"))
	require.NoError(t, err)
	_, err = svc.CalibrateEquipment(ctx, "SN-001", calibrationPayload())
	require.NoError(t, err)

	_, err = svc.DeliverEquipment(ctx, deliveryPayload("SN-001"))
	assert.ErrorIs(t, err, apperrors.ErrCounterExhausted)
}

func TestListEquipmentRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _, _ := newTestEquipmentService()

	_, err := svc.ListEquipmentByStatus(context.Background(), "broken")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestFormatCertificateNumber(t *testing.T) {
	assert.Equal(t, "26-00001", FormatCertificateNumber(2026, 1))
	assert.Equal(t, "26-99999", FormatCertificateNumber(2026, 99999))
	assert.Equal(t, "00-00042", FormatCertificateNumber(2100, 42))
}
