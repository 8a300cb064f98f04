package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/usecase"
)

// SellerHandler maneja las peticiones HTTP del servicio de vendedores.
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// List devuelve todos los vendedores.
func (h *SellerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Get devuelve un vendedor por código.
func (h *SellerHandler) Get(c *fiber.Ctx) error {
	code, err := uuid.Parse(c.Params("code"))
	if err != nil {
		return badRequest(c, "code must be a valid UUID")
	}
	out, err := h.uc.Get(c.Context(), code)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Create crea un vendedor.
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.Name == "" || in.Email == "" {
		return badRequest(c, "name and email are required")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un vendedor.
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	code, err := uuid.Parse(c.Params("code"))
	if err != nil {
		return badRequest(c, "code must be a valid UUID")
	}
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.Name == "" || in.Email == "" {
		return badRequest(c, "name and email are required")
	}
	out, err := h.uc.Update(c.Context(), code, in)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un vendedor por código.
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	code, err := uuid.Parse(c.Params("code"))
	if err != nil {
		return badRequest(c, "code must be a valid UUID")
	}
	if err := h.uc.Delete(c.Context(), code); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
