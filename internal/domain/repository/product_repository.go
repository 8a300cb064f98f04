package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product (DIP).
// GetByCode y GetByName devuelven (nil, nil) cuando no hay registro: la
// ausencia no es un error, la decide el caso de uso. GetByName consulta el
// índice secundario por nombre y devuelve a lo sumo un resultado.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
	GetByCode(ctx context.Context, code uuid.UUID) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	// Create persiste el snapshot y lo devuelve tal como quedó almacenado.
	Create(ctx context.Context, product entity.Product) (entity.Product, error)
	// Update falla con NotFoundError si el código no existe.
	Update(ctx context.Context, product entity.Product) (entity.Product, error)
	// Delete falla con NotFoundError si el código no existe.
	Delete(ctx context.Context, code uuid.UUID) error
	// Ping verifica conectividad con la tabla; solo lo usa el readiness probe.
	Ping(ctx context.Context) error
}
