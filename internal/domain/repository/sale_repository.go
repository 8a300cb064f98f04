package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
)

// SaleRepository puerto de persistencia para Sale. Las ventas son inmutables:
// no existe operación Update. El invoiceNumber se consulta vía índice
// secundario.
type SaleRepository interface {
	ListAll(ctx context.Context) ([]entity.Sale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByInvoice(ctx context.Context, invoiceNumber string) (*entity.Sale, error)
	Create(ctx context.Context, sale entity.Sale) (entity.Sale, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}
