package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Acepta JSON o los
// campos de un formulario multipart (cuando viene imagen adjunta).
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
}

// UpdateProductRequest entrada para actualizar un producto. El update es un
// reemplazo completo de campos (snapshot nuevo), no un parche.
type UpdateProductRequest struct {
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
}

// ProductResponse salida de un producto, en camelCase como el resto de la API.
type ProductResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
