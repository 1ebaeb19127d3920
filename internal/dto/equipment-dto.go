package dto

import "calibration-system/internal/entities"

// CreateEquipmentDTO is the intake payload. Identity fields are immutable
// after creation.
type CreateEquipmentDTO struct {
	Brand              string `json:"brand" validate:"required"`
	Model              string `json:"model" validate:"required"`
	ClientName         string `json:"client_name" validate:"required"`
	ClientCIF          string `json:"client_cif" validate:"required"`
	ClientDepartamento string `json:"client_departamento"`
	SerialNumber       string `json:"serial_number" validate:"required"`
	Observations       string `json:"observations"`
	EntryDate          string `json:"entry_date" validate:"required"`
}

type SensorCalibrationDTO struct {
	Sensor            string `json:"sensor" validate:"required"`
	PreAlarm          string `json:"pre_alarm"`
	Alarm             string `json:"alarm"`
	CalibrationValue  string `json:"calibration_value"`
	ValorZero         string `json:"valor_zero"`
	ValorSpan         string `json:"valor_span"`
	CalibrationBottle string `json:"calibration_bottle"`
	Approved          bool   `json:"approved"`
}

type SparePartDTO struct {
	Description string `json:"description" validate:"required"`
	Reference   string `json:"reference"`
	Warranty    bool   `json:"warranty"`
}

type CalibrationUpdateDTO struct {
	CalibrationData []SensorCalibrationDTO `json:"calibration_data" validate:"required,dive"`
	SpareParts      []SparePartDTO         `json:"spare_parts" validate:"dive"`
	CalibrationDate string                 `json:"calibration_date" validate:"required"`
	Technician      string                 `json:"technician" validate:"required"`
	InternalNotes   string                 `json:"internal_notes"`
}

type DeliveryUpdateDTO struct {
	SerialNumbers    []string `json:"serial_numbers" validate:"required,min=1"`
	DeliveryNote     string   `json:"delivery_note" validate:"required"`
	DeliveryLocation string   `json:"delivery_location" validate:"required"`
	DeliveryDate     string   `json:"delivery_date" validate:"required"`
}

type DeliveryResultDTO struct {
	Attempted int      `json:"attempted"`
	Serials   []string `json:"serials"`
}

func (d SensorCalibrationDTO) ToEntity() entities.SensorCalibration {
	return entities.SensorCalibration{
		Sensor:            d.Sensor,
		PreAlarm:          d.PreAlarm,
		Alarm:             d.Alarm,
		CalibrationValue:  d.CalibrationValue,
		ValorZero:         d.ValorZero,
		ValorSpan:         d.ValorSpan,
		CalibrationBottle: d.CalibrationBottle,
		Approved:          d.Approved,
	}
}

func (d SparePartDTO) ToEntity() entities.SparePart {
	return entities.SparePart{
		Description: d.Description,
		Reference:   d.Reference,
		Warranty:    d.Warranty,
	}
}

func SensorCalibrationsToEntities(in []SensorCalibrationDTO) []entities.SensorCalibration {
	out := make([]entities.SensorCalibration, 0, len(in))
	for _, s := range in {
		out = append(out, s.ToEntity())
	}
	return out
}

func SparePartsToEntities(in []SparePartDTO) []entities.SparePart {
	out := make([]entities.SparePart, 0, len(in))
	for _, s := range in {
		out = append(out, s.ToEntity())
	}
	return out
}
