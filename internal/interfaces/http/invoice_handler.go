package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// InvoiceHandler /factures.
type InvoiceHandler struct {
	uc  *usecase.InvoiceUseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar factures
// @Tags         factures
// @Produce      json
// @Security     BearerAuth
// @Param        chantierId  query  string  false  "filtrar por chantier"
// @Success      200  {object}  dto.ListResponse[dto.InvoiceResponse]
// @Router       /api/factures [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), GetEnterpriseID(c), c.Query("chantierId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.InvoiceResponse]{Items: items})
}

// Create godoc
// @Summary      Crear facture
// @Tags         factures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "chantierId, numero, montantHT, dateFacture requeridos"
// @Success      200   {object}  dto.ItemResponse[dto.InvoiceResponse]
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/factures [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(c.UserContext(), GetEnterpriseID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.InvoiceResponse]{Item: item})
}
