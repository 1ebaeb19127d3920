package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// SensorCalibration is one sensor row of a calibration: thresholds, measured
// values, the gas bottle used and the pass/fail verdict.
type SensorCalibration struct {
	Sensor            string `json:"sensor"`
	PreAlarm          string `json:"pre_alarm"`
	Alarm             string `json:"alarm"`
	CalibrationValue  string `json:"calibration_value"`
	ValorZero         string `json:"valor_zero"`
	ValorSpan         string `json:"valor_span"`
	CalibrationBottle string `json:"calibration_bottle"`
	Approved          bool   `json:"approved"`
}

type SparePart struct {
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Warranty    bool   `json:"warranty"`
}

// Equipment is the live workshop record of a unit. One non-delivered
// instance may exist per serial number; delivered instances accumulate as
// the unit re-enters the workshop over the years.
type Equipment struct {
	ID                 string              `json:"id"`
	SerialNumber       string              `json:"serial_number"`
	Brand              string              `json:"brand"`
	Model              string              `json:"model"`
	ClientName         string              `json:"client_name"`
	ClientCIF          string              `json:"client_cif"`
	ClientDepartamento string              `json:"client_departamento"`
	Observations       string              `json:"observations"`
	EntryDate          string              `json:"entry_date"`
	Status             string              `json:"status"`
	CalibrationData    []SensorCalibration `json:"calibration_data,omitempty"`
	SpareParts         []SparePart         `json:"spare_parts,omitempty"`
	CalibrationDate    null.String         `json:"calibration_date"`
	Technician         null.String         `json:"technician"`
	InternalNotes      null.String         `json:"internal_notes"`
	DeliveryNote       null.String         `json:"delivery_note"`
	DeliveryLocation   null.String         `json:"delivery_location"`
	DeliveryDate       null.String         `json:"delivery_date"`
	CertificateNumber  null.String         `json:"certificate_number"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          null.Time           `json:"updated_at,omitempty"`
}
