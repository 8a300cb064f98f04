package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura). Llevan el contexto
// campo/valor que la capa HTTP necesita para construir la respuesta al cliente.

// NotFoundError indica que no existe una entidad con el identificador pedido.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFound construye un NotFoundError para la entidad e identificador dados.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// DuplicateError indica una colisión sobre el campo único de una entidad
// (name en productos, email en vendedores, invoiceNumber en ventas).
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s=%q already exists", e.Entity, e.Field, e.Value)
}

// NewDuplicate construye un DuplicateError con el campo y valor en conflicto.
func NewDuplicate(entity, field, value string) *DuplicateError {
	return &DuplicateError{Entity: entity, Field: field, Value: value}
}

// InvalidPriceError indica un precio fuera del invariante (> 0).
type InvalidPriceError struct {
	Amount decimal.Decimal
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price: %s, price must be > 0", e.Amount)
}

// InvalidSaleError indica una venta que viola un invariante local
// (fecha en el futuro, formato de fecha o UUID inválido).
type InvalidSaleError struct {
	Reason string
}

func (e *InvalidSaleError) Error() string {
	return "invalid sale: " + e.Reason
}

// ImageUploadError envuelve un fallo del canal de subida de imágenes.
type ImageUploadError struct {
	Err error
}

func (e *ImageUploadError) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *ImageUploadError) Unwrap() error { return e.Err }
