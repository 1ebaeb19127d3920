package pdf

import (
	"testing"

	"calibration-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSnapshot() CertificateSnapshot {
	return CertificateSnapshot{
		CertificateNumber:  "26-00001",
		SerialNumber:       "SN-001",
		Brand:              "Dräger",
		Model:              "X-am 2500",
		ClientName:         "Bodegas del Norte S.L.",
		ClientCIF:          "B12345678",
		ClientDepartamento: "Mantenimiento",
		EntryDate:          "2026-03-02",
		CalibrationDate:    "2026-03-05",
		Technician:         "Miguel Ángel",
		Observations:       "pantalla rayada",
		Sensors: []entities.SensorCalibration{
			{Sensor: "O2", PreAlarm: "19.5", Alarm: "23.0", CalibrationValue: "20.9", ValorZero: "0.0", ValorSpan: "20.9", CalibrationBottle: "BT-114", Approved: true},
			{Sensor: "H2S", PreAlarm: "5", Alarm: "10", CalibrationValue: "25", ValorZero: "0", ValorSpan: "24", CalibrationBottle: "BT-115", Approved: false},
		},
		SpareParts: []entities.SparePart{
			{Description: "filtro de polvo", Reference: "FP-22", Warranty: true},
		},
	}
}

func TestGenerateCertificate(t *testing.T) {
	content, err := GenerateCertificate(fullSnapshot())
	require.NoError(t, err)
	require.Greater(t, len(content), 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestGenerateCertificateWithEmptySections(t *testing.T) {
	snap := fullSnapshot()
	snap.Sensors = nil
	snap.SpareParts = nil
	snap.CertificateNumber = ""

	content, err := GenerateCertificate(snap)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestGenerateCertificateIsDeterministicPerSnapshot(t *testing.T) {
	// Rendering must depend on the snapshot alone; two runs of the same
	// input produce a document of the same size.
	first, err := GenerateCertificate(fullSnapshot())
	require.NoError(t, err)
	second, err := GenerateCertificate(fullSnapshot())
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}
