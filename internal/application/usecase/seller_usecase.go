package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/repository"
)

const sellerEntity = "seller"

// SellerUseCase casos de uso CRUD para vendedores, con unicidad de email
// verificada contra el índice secundario.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// List devuelve todos los vendedores.
func (uc *SellerUseCase) List(ctx context.Context) ([]dto.SellerResponse, error) {
	sellers, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		items = append(items, toSellerResponse(s))
	}
	return items, nil
}

// Get obtiene un vendedor por código o falla con NotFoundError.
func (uc *SellerUseCase) Get(ctx context.Context, code uuid.UUID) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.NewNotFound(sellerEntity, code.String())
	}
	out := toSellerResponse(*seller)
	return &out, nil
}

// Create crea un vendedor nuevo tras sondear que el email no esté registrado.
// El sondeo y la escritura no son atómicos (misma ventana de carrera que en
// productos).
func (uc *SellerUseCase) Create(ctx context.Context, in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicate(sellerEntity, "email", in.Email)
	}

	created, err := uc.repo.Create(ctx, entity.NewSeller(in.Name, in.Email))
	if err != nil {
		return nil, err
	}
	out := toSellerResponse(created)
	return &out, nil
}

// Update actualiza un vendedor. Lanza las dos lecturas (existencia por código
// y sondeo de email) en paralelo y espera ambas antes de decidir; el primer
// error aborta el caso de uso. Solo hay colisión cuando el email pedido
// difiere del actual y otro registro ya lo tiene.
func (uc *SellerUseCase) Update(ctx context.Context, code uuid.UUID, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	var current, byEmail *entity.Seller

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.repo.GetByCode(gctx, code)
		current = s
		return err
	})
	g.Go(func() error {
		s, err := uc.repo.GetByEmail(gctx, in.Email)
		byEmail = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if current == nil {
		return nil, domain.NewNotFound(sellerEntity, code.String())
	}
	if current.Email != in.Email && byEmail != nil {
		return nil, domain.NewDuplicate(sellerEntity, "email", in.Email)
	}

	updated, err := uc.repo.Update(ctx, current.Updated(in.Name, in.Email))
	if err != nil {
		return nil, err
	}
	out := toSellerResponse(updated)
	return &out, nil
}

// Delete elimina un vendedor por código; el adaptador produce NotFoundError.
func (uc *SellerUseCase) Delete(ctx context.Context, code uuid.UUID) error {
	return uc.repo.Delete(ctx, code)
}

func toSellerResponse(s entity.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		Code:      s.Code.String(),
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
