package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// StatementHandler /situations.
type StatementHandler struct {
	uc  *usecase.StatementUseCase
	pdf *usecase.StatementPDFUseCase
	log *logger.Logger
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *usecase.StatementUseCase, pdf *usecase.StatementPDFUseCase, log *logger.Logger) *StatementHandler {
	return &StatementHandler{uc: uc, pdf: pdf, log: log}
}

// List godoc
// @Summary      Listar situations
// @Tags         situations
// @Produce      json
// @Security     BearerAuth
// @Param        chantierId  query  string  false  "filtrar por chantier"
// @Success      200  {object}  dto.ListResponse[dto.StatementResponse]
// @Router       /api/situations [get]
func (h *StatementHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), GetEnterpriseID(c), c.Query("chantierId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.StatementResponse]{Items: items})
}

// Create godoc
// @Summary      Crear situation
// @Tags         situations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStatementRequest  true  "chantierId, numero, mois, montantHT requeridos"
// @Success      200   {object}  dto.ItemResponse[dto.StatementResponse]
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/situations [post]
func (h *StatementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStatementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(c.UserContext(), GetEnterpriseID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.StatementResponse]{Item: item})
}

// GetByID godoc
// @Summary      Obtener situation
// @Tags         situations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ItemResponse[dto.StatementResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/situations/{id} [get]
func (h *StatementHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.UserContext(), GetEnterpriseID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.StatementResponse]{Item: item})
}

// Update godoc
// @Summary      Actualizar situation (parcial)
// @Tags         situations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID"
// @Param        body  body  dto.UpdateStatementRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ItemResponse[dto.StatementResponse]
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/situations/{id} [patch]
func (h *StatementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStatementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Update(c.UserContext(), GetEnterpriseID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.StatementResponse]{Item: item})
}

// PDF godoc
// @Summary      Descargar situation en PDF
// @Tags         situations
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/situations/{id}/pdf [get]
func (h *StatementHandler) PDF(c *fiber.Ctx) error {
	out, filename, err := h.pdf.Render(c.UserContext(), GetEnterpriseID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(out)
}
