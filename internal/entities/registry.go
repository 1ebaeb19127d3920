package entities

import "time"

// Reference registries: flat named-entity tables with a uniqueness
// constraint on their natural key.

type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Model struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Client struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CIF           string    `json:"cif"`
	Departamentos []string  `json:"departamentos"`
	CreatedAt     time.Time `json:"created_at"`
}
