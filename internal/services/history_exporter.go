package services

import (
	"fmt"
	"strings"

	"calibration-system/internal/entities"

	"github.com/xuri/excelize/v2"
)

const historySheet = "Historial"

var historyColumns = []string{
	"Nº Serie", "Marca", "Modelo", "Cliente", "CIF", "Departamento",
	"Fecha Calibración", "Técnico", "Sensores", "Aprobados", "Repuestos",
	"Albarán", "Nº Certificado",
}

// buildHistoryWorkbook renders history entries into a single-sheet XLSX.
func buildHistoryWorkbook(entries []entities.CalibrationHistory) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(historySheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range historyColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(historySheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, entry := range entries {
		values := []interface{}{
			entry.SerialNumber,
			entry.Brand,
			entry.Model,
			entry.ClientName,
			entry.ClientCIF,
			entry.ClientDepartamento,
			entry.CalibrationDate,
			entry.Technician,
			sensorSummary(entry.CalibrationData),
			approvedSummary(entry.CalibrationData),
			sparePartSummary(entry.SpareParts),
			entry.DeliveryNote.String,
			entry.CertificateNumber.String,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(historySheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sensorSummary(data []entities.SensorCalibration) string {
	names := make([]string, 0, len(data))
	for _, sc := range data {
		names = append(names, sc.Sensor)
	}
	return strings.Join(names, ", ")
}

func approvedSummary(data []entities.SensorCalibration) string {
	approved := 0
	for _, sc := range data {
		if sc.Approved {
			approved++
		}
	}
	return fmt.Sprintf("%d/%d", approved, len(data))
}

func sparePartSummary(parts []entities.SparePart) string {
	descriptions := make([]string, 0, len(parts))
	for _, p := range parts {
		descriptions = append(descriptions, p.Description)
	}
	return strings.Join(descriptions, ", ")
}
