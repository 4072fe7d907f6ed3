package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// DashboardHandler maneja el resumen del tablero.
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get devuelve los contadores de la empresa en sesión.
// GET /api/dashboard
//
// Respuesta: DashboardResponse (sousTraitants, chantiers, chantiersEnCours,
// situationsEnAttenteHT, documentsExpires).
//
// @Summary      Resumen de la empresa
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ItemResponse[dto.DashboardResponse]
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	summary, err := h.uc.Get(c.UserContext(), GetEnterpriseID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.DashboardResponse]{Item: summary})
}

// SeedHandler carga los datos de demostración.
type SeedHandler struct {
	uc  *usecase.SeedUseCase
	log *logger.Logger
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *usecase.SeedUseCase, log *logger.Logger) *SeedHandler {
	return &SeedHandler{uc: uc, log: log}
}

// Seed godoc
// @Summary      Cargar datos de demostración
// @Description  Idempotente: si la empresa ya tiene sous-traitants no inserta nada.
// @Tags         seed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SeedResponse
// @Router       /api/seed [post]
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	res, err := h.uc.Seed(c.UserContext(), GetEnterpriseID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(res)
}
