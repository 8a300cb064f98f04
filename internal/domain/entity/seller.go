package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller snapshot inmutable de un vendedor. El email es único entre vendedores.
type Seller struct {
	Code      uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSeller fábrica de vendedores: genera el UUID y los timestamps en UTC.
func NewSeller(name, email string) Seller {
	now := time.Now().UTC()
	return Seller{
		Code:      uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Updated construye un nuevo snapshot preservando Code y CreatedAt y
// refrescando UpdatedAt.
func (s Seller) Updated(name, email string) Seller {
	return Seller{
		Code:      s.Code,
		Name:      name,
		Email:     email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
}
