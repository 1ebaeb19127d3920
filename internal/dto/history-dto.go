package dto

// HistorySearchDTO carries the supported calibration-history filters.
// Dates are compared as the same ISO strings the records store.
type HistorySearchDTO struct {
	SerialNumber string `json:"serial_number"`
	ClientName   string `json:"client_name"`
	ClientCIF    string `json:"client_cif"`
	Technician   string `json:"technician"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}
