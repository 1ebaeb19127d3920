package dto

type CreateEquipmentMasterDTO struct {
	SerialNumber       string   `json:"serial_number" validate:"required"`
	Brand              string   `json:"brand" validate:"required"`
	Model              string   `json:"model" validate:"required"`
	ClientName         string   `json:"client_name"`
	ClientCIF          string   `json:"client_cif"`
	ClientDepartamento string   `json:"client_departamento"`
	DefaultSensors     []string `json:"default_sensors"`
	Notes              string   `json:"notes"`
}

type UpdateEquipmentMasterDTO struct {
	Brand              *string   `json:"brand,omitempty" validate:"omitempty,min=1"`
	Model              *string   `json:"model,omitempty" validate:"omitempty,min=1"`
	ClientName         *string   `json:"client_name,omitempty"`
	ClientCIF          *string   `json:"client_cif,omitempty"`
	ClientDepartamento *string   `json:"client_departamento,omitempty"`
	DefaultSensors     *[]string `json:"default_sensors,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
}
