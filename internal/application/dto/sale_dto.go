package dto

import "time"

// CreateSaleRequest entrada para registrar una venta. SaleDate viaja como
// fecha calendario ISO (YYYY-MM-DD); el caso de uso la parsea y valida.
// SellerCode y ProductCode son UUIDs de referencia; su integridad referencial
// no se verifica aquí.
type CreateSaleRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
	SaleDate      string `json:"saleDate"`
	SellerCode    string `json:"sellerCode"`
	ProductCode   string `json:"productCode"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	SaleDate      string    `json:"saleDate"`
	SellerCode    string    `json:"sellerCode"`
	ProductCode   string    `json:"productCode"`
	CreatedAt     time.Time `json:"createdAt"`
}
