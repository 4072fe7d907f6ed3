package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeTokenMissing       = "TOKEN_MISSING"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// badBody responde 400 cuando el cuerpo no se puede decodificar.
func badBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "cuerpo JSON inválido")
}

// writeError traduce un error de dominio a su respuesta HTTP. Los errores no
// clasificados se registran y se devuelven como 500 sin detalles internos.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: CodeValidation, Message: ve.Message, Field: ve.Field,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusUnprocessableEntity, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "recurso no encontrado")
	case errors.Is(err, domain.ErrTokenMissing):
		return errorJSON(c, fiber.StatusUnauthorized, CodeTokenMissing, "Authorization: Bearer <token> requerido")
	case errors.Is(err, domain.ErrTokenExpired):
		return errorJSON(c, fiber.StatusUnauthorized, CodeTokenExpired, "token expirado")
	case errors.Is(err, domain.ErrTokenInvalid):
		return errorJSON(c, fiber.StatusUnauthorized, CodeTokenInvalid, "token inválido")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, CodeInvalidCredentials, "credenciales inválidas")
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("almacenamiento no disponible")
		return errorJSON(c, fiber.StatusServiceUnavailable, CodeStoreUnavailable, "almacenamiento no disponible")
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "error interno")
	}
}

// ErrorHandler para fiber.Config: rutas inexistentes, métodos no permitidos y
// errores que escapan de los handlers.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				code = CodeValidation
			}
			return errorJSON(c, fe.Code, code, fe.Message)
		}
		return writeError(c, log, err)
	}
}
