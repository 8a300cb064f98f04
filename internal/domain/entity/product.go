package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product snapshot inmutable de un producto. El nombre es único dentro del
// catálogo; la unicidad se verifica en el caso de uso contra el índice
// secundario del almacén.
type Product struct {
	Code        uuid.UUID
	Name        string
	Description string
	Price       Price
	ImageURL    string // URL pública en S3, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct fábrica de productos: genera el UUID y los timestamps en UTC
// (CreatedAt == UpdatedAt al nacer).
func NewProduct(name, description string, price Price, imageURL string) Product {
	now := time.Now().UTC()
	return Product{
		Code:        uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Updated construye un nuevo snapshot con los campos dados, preservando Code
// y CreatedAt y refrescando UpdatedAt. Nunca muta el receptor.
func (p Product) Updated(name, description string, price Price, imageURL string) Product {
	return Product{
		Code:        p.Code,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
}
