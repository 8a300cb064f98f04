package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP del servicio de ventas.
// Las ventas no tienen ruta de actualización: son inmutables.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List devuelve todas las ventas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Get devuelve una venta por ID.
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id must be a valid UUID")
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Create registra una venta.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.InvoiceNumber == "" {
		return badRequest(c, "invoiceNumber is required")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete elimina una venta por ID.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id must be a valid UUID")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
