package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sale snapshot inmutable de una venta. El invoiceNumber es único entre
// ventas. Las ventas no se actualizan después de creadas (solo crear/borrar),
// por eso no tienen UpdatedAt. Las referencias a vendedor y producto se
// asumen válidas: este servicio no verifica integridad referencial.
type Sale struct {
	ID            uuid.UUID
	InvoiceNumber string
	SaleDate      time.Time // solo fecha calendario (medianoche UTC)
	SellerCode    uuid.UUID
	ProductCode   uuid.UUID
	CreatedAt     time.Time
}

// NewSale fábrica de ventas: genera el UUID y el timestamp de creación en UTC.
func NewSale(invoiceNumber string, saleDate time.Time, sellerCode, productCode uuid.UUID) Sale {
	return Sale{
		ID:            uuid.New(),
		InvoiceNumber: invoiceNumber,
		SaleDate:      saleDate,
		SellerCode:    sellerCode,
		ProductCode:   productCode,
		CreatedAt:     time.Now().UTC(),
	}
}
