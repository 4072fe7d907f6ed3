package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// HealthHandler sondas de liveness y readiness.
type HealthHandler struct {
	uc  *usecase.HealthUseCase
	log *logger.Logger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(uc *usecase.HealthUseCase, log *logger.Logger) *HealthHandler {
	return &HealthHandler{uc: uc, log: log}
}

// Live responde siempre 200 mientras el proceso sirve peticiones.
// @Summary  Liveness
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}

// Ready comprueba el almacenamiento. 503 {"status":"not_ready"} si no responde.
// @Summary  Readiness
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Failure  503  {object}  dto.HealthResponse
// @Router   /health/ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.uc.Ready(c.UserContext()); err != nil {
		h.log.Warn().Err(err).Msg("readiness: almacenamiento no disponible")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "not_ready"})
	}
	return c.JSON(dto.HealthResponse{Status: "ready"})
}
