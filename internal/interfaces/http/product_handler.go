package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del servicio de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List devuelve todos los productos.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Get devuelve un producto por código.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
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

// Create crea un producto. Acepta JSON o multipart/form-data con un campo de
// archivo opcional "image" que se sube al bucket antes de persistir.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := parseProductPayload(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	image, closeImage, err := imageFromForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if closeImage != nil {
		defer closeImage()
	}

	out, err := h.uc.Create(c.Context(), dto.CreateProductRequest(in), image)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un producto. Misma forma de payload que Create.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	code, err := uuid.Parse(c.Params("code"))
	if err != nil {
		return badRequest(c, "code must be a valid UUID")
	}
	in, err := parseProductPayload(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	image, closeImage, err := imageFromForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if closeImage != nil {
		defer closeImage()
	}

	out, err := h.uc.Update(c.Context(), code, dto.UpdateProductRequest(in), image)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto por código.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	code, err := uuid.Parse(c.Params("code"))
	if err != nil {
		return badRequest(c, "code must be a valid UUID")
	}
	if err := h.uc.Delete(c.Context(), code); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// productPayload campos comunes de create/update antes de convertir al DTO.
type productPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// parseProductPayload lee el cuerpo como JSON o, si viene multipart, desde
// los campos del formulario (el decimal se parsea a mano: el decoder de
// formularios no conoce decimal.Decimal).
func parseProductPayload(c *fiber.Ctx) (productPayload, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		price, err := decimal.NewFromString(c.FormValue("price"))
		if err != nil {
			return productPayload{}, fiber.NewError(fiber.StatusBadRequest, "price must be a decimal number")
		}
		return productPayload{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			Price:       price,
		}, nil
	}

	var in productPayload
	if err := c.BodyParser(&in); err != nil {
		return productPayload{}, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return in, nil
}

// imageFromForm extrae el archivo "image" del multipart si existe. El nombre
// del objeto lleva un prefijo UUID para no pisar subidas con el mismo nombre.
func imageFromForm(c *fiber.Ctx) (*dto.ImageUpload, func(), error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil, nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		// Sin archivo adjunto: la imagen es opcional.
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "cannot read image file")
	}
	upload := &dto.ImageUpload{
		Filename:    uuid.New().String() + "-" + fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Content:     f,
	}
	return upload, func() { _ = f.Close() }, nil
}
