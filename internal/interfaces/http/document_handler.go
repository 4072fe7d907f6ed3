package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// DocumentHandler /documents.
type DocumentHandler struct {
	uc  *usecase.DocumentUseCase
	log *logger.Logger
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar documentos
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        sousTraitantId  query  string  false  "filtrar por sous-traitant"
// @Success      200  {object}  dto.ListResponse[dto.DocumentResponse]
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), GetEnterpriseID(c), c.Query("sousTraitantId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.DocumentResponse]{Items: items})
}

// Create godoc
// @Summary      Registrar documento
// @Description  Si dateExpiration ya pasó, el statut queda en "expire".
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDocumentRequest  true  "sousTraitantId, type, nom requeridos"
// @Success      200   {object}  dto.ItemResponse[dto.DocumentResponse]
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(c.UserContext(), GetEnterpriseID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse[*dto.DocumentResponse]{Item: item})
}

// Types godoc
// @Summary      Catálogo de tipos de documento
// @Tags         documents
// @Produce      json
// @Success      200  {object}  dto.DocumentTypesResponse
// @Router       /api/documents/types [get]
func (h *DocumentHandler) Types(c *fiber.Ctx) error {
	return c.JSON(h.uc.Types())
}
