package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// SubcontractorHandler CRUD de /st.
type SubcontractorHandler struct {
	uc  *usecase.SubcontractorUseCase
	log *logger.Logger
}

// NewSubcontractorHandler construye el handler.
func NewSubcontractorHandler(uc *usecase.SubcontractorUseCase, log *logger.Logger) *SubcontractorHandler {
	return &SubcontractorHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar sous-traitants
// @Tags         st
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.SubcontractorResponse]
// @Router       /api/st [get]
func (h *SubcontractorHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), GetEnterpriseID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.SubcontractorResponse]{Items: items})
}

// GetByID godoc
// @Summary      Obtener sous-traitant
// @Tags         st
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ItemResponse[dto.SubcontractorResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/st/{id} [get]
func (h *SubcontractorHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.UserContext(), GetEnterpriseID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.SubcontractorResponse]{Item: item})
}

// Create godoc
// @Summary      Crear sous-traitant
// @Tags         st
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSubcontractorRequest  true  "nom requerido"
// @Success      200   {object}  dto.ItemResponse[dto.SubcontractorResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/st [post]
func (h *SubcontractorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcontractorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(c.UserContext(), GetEnterpriseID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.SubcontractorResponse]{Item: item})
}

// Update godoc
// @Summary      Actualizar sous-traitant (parcial)
// @Tags         st
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID"
// @Param        body  body  dto.UpdateSubcontractorRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ItemResponse[dto.SubcontractorResponse]
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/st/{id} [patch]
func (h *SubcontractorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcontractorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Update(c.UserContext(), GetEnterpriseID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.SubcontractorResponse]{Item: item})
}

// Delete godoc
// @Summary      Borrar sous-traitant
// @Tags         st
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/st/{id} [delete]
func (h *SubcontractorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetEnterpriseID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}
