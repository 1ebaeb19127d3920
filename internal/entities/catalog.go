package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// EquipmentCatalog is the denormalized "latest known state per serial"
// projection, upserted as a side effect of intake and calibration. It is
// never authoritative for lifecycle status.
type EquipmentCatalog struct {
	SerialNumber        string              `json:"serial_number"`
	Brand               string              `json:"brand"`
	Model               string              `json:"model"`
	ClientName          string              `json:"client_name"`
	ClientCIF           string              `json:"client_cif"`
	ClientDepartamento  string              `json:"client_departamento"`
	LastEntryDate       string              `json:"last_entry_date"`
	LastCalibrationData []SensorCalibration `json:"last_calibration_data,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           null.Time           `json:"updated_at,omitempty"`
}

// EquipmentMaster is the operator-authored reference record for a serial
// number: default sensor set and current client assignment.
type EquipmentMaster struct {
	ID                 string    `json:"id"`
	SerialNumber       string    `json:"serial_number"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	ClientName         string    `json:"client_name"`
	ClientCIF          string    `json:"client_cif"`
	ClientDepartamento string    `json:"client_departamento"`
	DefaultSensors     []string  `json:"default_sensors"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          null.Time `json:"updated_at,omitempty"`
}
