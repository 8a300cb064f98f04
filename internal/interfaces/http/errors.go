package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
)

// renderError mapea errores de dominio a códigos HTTP:
//
//	NotFoundError                      -> 404
//	DuplicateError                     -> 400
//	InvalidPriceError/InvalidSaleError -> 400
//	ImageUploadError                   -> 500
//	cualquier otro                     -> 500 con cuerpo genérico
//
// Los errores de dominio llegan intactos desde el caso de uso y conservan el
// contexto campo/valor en el detail.
func renderError(c *fiber.Ctx, err error) error {
	var (
		notFound     *domain.NotFoundError
		duplicate    *domain.DuplicateError
		invalidPrice *domain.InvalidPriceError
		invalidSale  *domain.InvalidSaleError
		imageUpload  *domain.ImageUploadError
	)

	switch {
	case errors.As(err, &notFound):
		return respondError(c, fiber.StatusNotFound, "Resource Not Found", err.Error())
	case errors.As(err, &duplicate):
		return respondError(c, fiber.StatusBadRequest, "Duplicate Resource", err.Error())
	case errors.As(err, &invalidPrice):
		return respondError(c, fiber.StatusBadRequest, "Invalid Price", err.Error())
	case errors.As(err, &invalidSale):
		return respondError(c, fiber.StatusBadRequest, "Invalid Sale", err.Error())
	case errors.As(err, &imageUpload):
		return respondError(c, fiber.StatusInternalServerError, "Image Upload Failed", err.Error())
	default:
		// Errores de infraestructura: cuerpo genérico, sin detalles internos.
		return respondError(c, fiber.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred")
	}
}

func respondError(c *fiber.Ctx, status int, title, detail string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Title:  title,
		Detail: detail,
		Status: status,
	})
}

// badRequest respuesta 400 para errores de parseo del propio transporte.
func badRequest(c *fiber.Ctx, detail string) error {
	return respondError(c, fiber.StatusBadRequest, "Bad Request", detail)
}
