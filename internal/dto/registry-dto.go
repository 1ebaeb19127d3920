package dto

type CreateNamedEntityDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}

type CreateClientDTO struct {
	Name          string   `json:"name" validate:"required,min=1"`
	CIF           string   `json:"cif" validate:"required,min=1"`
	Departamentos []string `json:"departamentos"`
}
