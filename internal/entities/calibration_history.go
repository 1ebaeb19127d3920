package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// CalibrationHistory is one append-only ledger entry per calibration event.
// Rows are never replaced; delivery only backfills the delivery note and
// certificate number.
type CalibrationHistory struct {
	ID                 string              `json:"id"`
	EquipmentID        string              `json:"equipment_id"`
	SerialNumber       string              `json:"serial_number"`
	Brand              string              `json:"brand"`
	Model              string              `json:"model"`
	ClientName         string              `json:"client_name"`
	ClientCIF          string              `json:"client_cif"`
	ClientDepartamento string              `json:"client_departamento"`
	CalibrationData    []SensorCalibration `json:"calibration_data"`
	SpareParts         []SparePart         `json:"spare_parts"`
	CalibrationDate    string              `json:"calibration_date"`
	Technician         string              `json:"technician"`
	InternalNotes      null.String         `json:"internal_notes"`
	DeliveryNote       null.String         `json:"delivery_note"`
	CertificateNumber  null.String         `json:"certificate_number"`
	CreatedAt          time.Time           `json:"created_at"`
}
