package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/repository"
)

const (
	saleEntity     = "sale"
	saleDateLayout = "2006-01-02"
)

// SaleUseCase casos de uso para ventas. Las ventas son inmutables: solo
// listar, consultar, crear y borrar.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// List devuelve todas las ventas registradas.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}
	return items, nil
}

// Get obtiene una venta por ID o falla con NotFoundError.
func (uc *SaleUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound(saleEntity, id.String())
	}
	out := toSaleResponse(*sale)
	return &out, nil
}

// Create registra una venta:
//  1. parsea y valida los invariantes locales (fecha no futura, UUIDs válidos)
//  2. sondea unicidad del número de factura vía índice secundario
//  3. construye el snapshot y lo persiste
//
// La fecha de hoy es válida; estrictamente futura no. Misma ventana de
// carrera sondeo/escritura que en los demás servicios.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	saleDate, err := time.ParseInLocation(saleDateLayout, in.SaleDate, time.UTC)
	if err != nil {
		return nil, &domain.InvalidSaleError{Reason: "saleDate must be a YYYY-MM-DD date"}
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if saleDate.After(today) {
		return nil, &domain.InvalidSaleError{Reason: "saleDate cannot be in the future"}
	}

	sellerCode, err := uuid.Parse(in.SellerCode)
	if err != nil {
		return nil, &domain.InvalidSaleError{Reason: "sellerCode must be a valid UUID"}
	}
	productCode, err := uuid.Parse(in.ProductCode)
	if err != nil {
		return nil, &domain.InvalidSaleError{Reason: "productCode must be a valid UUID"}
	}

	existing, err := uc.repo.GetByInvoice(ctx, in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicate(saleEntity, "invoiceNumber", in.InvoiceNumber)
	}

	created, err := uc.repo.Create(ctx, entity.NewSale(in.InvoiceNumber, saleDate, sellerCode, productCode))
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(created)
	return &out, nil
}

// Delete elimina una venta por ID; el adaptador produce NotFoundError.
func (uc *SaleUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID.String(),
		InvoiceNumber: s.InvoiceNumber,
		SaleDate:      s.SaleDate.Format(saleDateLayout),
		SellerCode:    s.SellerCode.String(),
		ProductCode:   s.ProductCode.String(),
		CreatedAt:     s.CreatedAt,
	}
}
