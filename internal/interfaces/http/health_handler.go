package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MartinGalvanCastro/Software-Modernization/pkg/logger"
)

// Pinger puerto mínimo para el readiness probe; los tres repositorios lo
// satisfacen con su Ping contra la tabla.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone los probes de liveness y readiness.
type HealthHandler struct {
	store Pinger
	log   *logger.Logger
}

// NewHealthHandler construye el handler de salud.
func NewHealthHandler(store Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

// Live siempre responde 200 si el proceso está corriendo.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// Ready verifica la dependencia aguas abajo (la tabla del almacén) y responde
// 503 si no está disponible.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.store.Ping(c.Context()); err != nil {
		h.log.Error().Err(err).Msg("readiness falló")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
