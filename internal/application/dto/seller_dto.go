package dto

import "time"

// CreateSellerRequest entrada para crear un vendedor. El email debe ser único.
type CreateSellerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateSellerRequest entrada para actualizar un vendedor.
type UpdateSellerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SellerResponse salida de un vendedor.
type SellerResponse struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
