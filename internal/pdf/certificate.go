package pdf

import (
	"bytes"
	"fmt"
	"time"

	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"

	"github.com/jung-kurt/gofpdf"
)

// CertificateSnapshot is everything a rendered certificate needs. It is
// assembled by the caller from either a live equipment record or a history
// entry; rendering is a function of the snapshot plus the issue date.
type CertificateSnapshot struct {
	CertificateNumber  string
	SerialNumber       string
	Brand              string
	Model              string
	ClientName         string
	ClientCIF          string
	ClientDepartamento string
	EntryDate          string
	CalibrationDate    string
	Technician         string
	Observations       string
	Sensors            []entities.SensorCalibration
	SpareParts         []entities.SparePart
}

const legalText = "En cumplimiento de la normativa vigente y los estándares de calidad " +
	"establecidos, se certifica que el equipo descrito a continuación ha sido " +
	"sometido a un proceso de calibración y verificación técnica en nuestras " +
	"instalaciones. Los resultados obtenidos cumplen con los requisitos técnicos " +
	"y de seguridad aplicables."

// GenerateCertificate renders an A4 calibration certificate as PDF bytes.
func GenerateCertificate(snap CertificateSnapshot) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	doc.SetTextColor(26, 95, 61)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr("CERTIFICADO DE CALIBRACIÓN"), "", 1, "C", false, 0, "")
	if snap.CertificateNumber != "" {
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 7, tr("Nº de Certificado: ")+snap.CertificateNumber, "", 1, "C", false, 0, "")
	}
	doc.Ln(4)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 5, tr(legalText), "", "J", false)
	doc.Ln(4)

	sectionHeading(doc, tr, "DATOS DEL EQUIPO Y CLIENTE")
	infoRow(doc, tr, "Número de Serie:", snap.SerialNumber)
	infoRow(doc, tr, "Marca:", snap.Brand)
	infoRow(doc, tr, "Modelo:", snap.Model)
	infoRow(doc, tr, "Cliente:", snap.ClientName)
	infoRow(doc, tr, "CIF:", snap.ClientCIF)
	infoRow(doc, tr, "Departamento:", snap.ClientDepartamento)
	infoRow(doc, tr, "Fecha de Entrada:", snap.EntryDate)
	infoRow(doc, tr, "Fecha de Calibración:", snap.CalibrationDate)
	infoRow(doc, tr, "Técnico Responsable:", snap.Technician)
	doc.Ln(4)

	sectionHeading(doc, tr, "RESULTADOS DE CALIBRACIÓN DE SENSORES")
	if len(snap.Sensors) == 0 {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 6, tr("No se registraron datos de calibración de sensores."), "", 1, "L", false, 0, "")
	} else {
		renderSensorTable(doc, tr, snap.Sensors)
	}
	doc.Ln(4)

	sectionHeading(doc, tr, "REPUESTOS UTILIZADOS")
	doc.SetFont("Helvetica", "", 10)
	if len(snap.SpareParts) == 0 {
		doc.CellFormat(0, 6, "Ninguno", "", 1, "L", false, 0, "")
	} else {
		for _, p := range snap.SpareParts {
			line := p.Description
			if p.Reference != "" {
				line += " (ref. " + p.Reference + ")"
			}
			if p.Warranty {
				line += tr(" — en garantía")
			}
			doc.CellFormat(0, 6, tr("- "+line), "", 1, "L", false, 0, "")
		}
	}
	doc.Ln(4)

	if snap.Observations != "" {
		sectionHeading(doc, tr, "OBSERVACIONES")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, tr(snap.Observations), "", "J", false)
		doc.Ln(4)
	}

	renderSignatureBlock(doc, tr, snap.Technician)

	doc.Ln(10)
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(128, 128, 128)
	issued := fmt.Sprintf("Fecha de emisión: %s", time.Now().Format("02/01/2006"))
	doc.CellFormat(0, 5, tr(issued), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate for serial %s: %v: %w",
			snap.SerialNumber, err, apperrors.ErrRenderFailure)
	}
	return buf.Bytes(), nil
}

func sectionHeading(doc *gofpdf.Fpdf, tr func(string) string, title string) {
	doc.SetTextColor(26, 95, 61)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
}

func infoRow(doc *gofpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFillColor(232, 245, 233)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(50, 7, tr(label), "1", 0, "R", true, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 7, tr(orNA(value)), "1", 1, "L", false, 0, "")
}

func renderSensorTable(doc *gofpdf.Fpdf, tr func(string) string, sensors []entities.SensorCalibration) {
	headers := []string{"Sensor", "Pre-Alarma", "Alarma", "Valor Cal.", "Valor Zero", "Valor SPAN", "Botella", "APTO"}
	widths := []float64{22, 22, 20, 22, 22, 22, 25, 15}

	doc.SetFillColor(26, 95, 61)
	doc.SetTextColor(245, 245, 245)
	doc.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		doc.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFillColor(245, 245, 220)
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
	for _, s := range sensors {
		verdict := "NO"
		if s.Approved {
			verdict = tr("SÍ")
		}
		cells := []string{
			tr(s.Sensor), tr(s.PreAlarm), tr(s.Alarm), tr(s.CalibrationValue),
			tr(s.ValorZero), tr(s.ValorSpan), tr(s.CalibrationBottle), verdict,
		}
		for i, c := range cells {
			doc.CellFormat(widths[i], 7, c, "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
	}
}

func renderSignatureBlock(doc *gofpdf.Fpdf, tr func(string) string, technician string) {
	doc.Ln(16)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(85, 6, "_______________________", "", 0, "C", false, 0, "")
	doc.CellFormat(85, 6, "_______________________", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(85, 6, tr("Técnico"), "", 0, "C", false, 0, "")
	doc.CellFormat(85, 6, "Supervisor", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(85, 6, tr(technician), "", 0, "C", false, 0, "")
	doc.CellFormat(85, 6, "", "", 1, "C", false, 0, "")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
