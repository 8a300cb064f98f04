package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/repository"
)

const productEntity = "product"

// ProductUseCase casos de uso CRUD para productos: valida invariantes locales,
// verifica unicidad de nombre contra el índice secundario y coordina la
// persistencia y la subida opcional de imagen.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images repository.ImageStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images repository.ImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// List devuelve todos los productos. Una tabla vacía produce lista vacía, no error.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Get obtiene un producto por código o falla con NotFoundError.
func (uc *ProductUseCase) Get(ctx context.Context, code uuid.UUID) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound(productEntity, code.String())
	}
	out := toProductResponse(*product)
	return &out, nil
}

// Create crea un producto nuevo:
//  1. valida el precio (invariante local, antes de tocar el almacén)
//  2. sondea unicidad del nombre vía índice secundario
//  3. sube la imagen si viene adjunta
//  4. construye el snapshot con la fábrica y lo persiste
//
// El sondeo y la escritura no son atómicos: dos creates concurrentes con el
// mismo nombre pueden pasar ambos el sondeo. Ventana de carrera conocida y
// aceptada; el almacén no la cierra porque la escritura no es condicional.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, image *dto.ImageUpload) (*dto.ProductResponse, error) {
	price, err := entity.NewPrice(in.Price)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicate(productEntity, "name", in.Name)
	}

	imageURL := ""
	if image != nil {
		url, err := uc.images.Upload(ctx, image.Filename, image.ContentType, image.Content)
		if err != nil {
			return nil, &domain.ImageUploadError{Err: err}
		}
		imageURL = url
	}

	created, err := uc.repo.Create(ctx, entity.NewProduct(in.Name, in.Description, price, imageURL))
	if err != nil {
		return nil, err
	}
	out := toProductResponse(created)
	return &out, nil
}

// Update actualiza un producto existente. Solo sondea unicidad cuando el
// nombre cambia respecto al actual; un registro distinto con ese nombre es
// colisión. El snapshot nuevo preserva CreatedAt y refresca UpdatedAt.
func (uc *ProductUseCase) Update(ctx context.Context, code uuid.UUID, in dto.UpdateProductRequest, image *dto.ImageUpload) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.NewNotFound(productEntity, code.String())
	}

	price, err := entity.NewPrice(in.Price)
	if err != nil {
		return nil, err
	}

	if in.Name != current.Name {
		holder, err := uc.repo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if holder != nil && holder.Code != code {
			return nil, domain.NewDuplicate(productEntity, "name", in.Name)
		}
	}

	imageURL := current.ImageURL
	if image != nil {
		url, err := uc.images.Upload(ctx, image.Filename, image.ContentType, image.Content)
		if err != nil {
			return nil, &domain.ImageUploadError{Err: err}
		}
		imageURL = url
	}

	updated, err := uc.repo.Update(ctx, current.Updated(in.Name, in.Description, price, imageURL))
	if err != nil {
		return nil, err
	}
	out := toProductResponse(updated)
	return &out, nil
}

// Delete elimina un producto por código. El adaptador produce NotFoundError
// si no existe; aquí no se valida nada adicional.
func (uc *ProductUseCase) Delete(ctx context.Context, code uuid.UUID) error {
	return uc.repo.Delete(ctx, code)
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Code:        p.Code.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount(),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
