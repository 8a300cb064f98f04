package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
)

// SellerRepository puerto de persistencia para Seller. Misma forma que
// ProductRepository, con el email como campo único (índice secundario).
type SellerRepository interface {
	ListAll(ctx context.Context) ([]entity.Seller, error)
	GetByCode(ctx context.Context, code uuid.UUID) (*entity.Seller, error)
	GetByEmail(ctx context.Context, email string) (*entity.Seller, error)
	Create(ctx context.Context, seller entity.Seller) (entity.Seller, error)
	Update(ctx context.Context, seller entity.Seller) (entity.Seller, error)
	Delete(ctx context.Context, code uuid.UUID) error
	Ping(ctx context.Context) error
}
