package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// SiteHandler CRUD de /chantiers.
type SiteHandler struct {
	uc  *usecase.SiteUseCase
	log *logger.Logger
}

// NewSiteHandler construye el handler.
func NewSiteHandler(uc *usecase.SiteUseCase, log *logger.Logger) *SiteHandler {
	return &SiteHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar chantiers
// @Tags         chantiers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.SiteResponse]
// @Router       /api/chantiers [get]
func (h *SiteHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), GetEnterpriseID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.SiteResponse]{Items: items})
}

// GetByID godoc
// @Summary      Obtener chantier
// @Tags         chantiers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ItemResponse[dto.SiteResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chantiers/{id} [get]
func (h *SiteHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.UserContext(), GetEnterpriseID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.SiteResponse]{Item: item})
}

// Create godoc
// @Summary      Crear chantier
// @Tags         chantiers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSiteRequest  true  "nom requerido"
// @Success      200   {object}  dto.ItemResponse[dto.SiteResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/chantiers [post]
func (h *SiteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSiteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(c.UserContext(), GetEnterpriseID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.SiteResponse]{Item: item})
}

// Update godoc
// @Summary      Actualizar chantier (parcial)
// @Tags         chantiers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID"
// @Param        body  body  dto.UpdateSiteRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ItemResponse[dto.SiteResponse]
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chantiers/{id} [patch]
func (h *SiteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSiteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Update(c.UserContext(), GetEnterpriseID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.SiteResponse]{Item: item})
}

// Delete godoc
// @Summary      Borrar chantier
// @Tags         chantiers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chantiers/{id} [delete]
func (h *SiteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetEnterpriseID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}
