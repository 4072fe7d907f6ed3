package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/auth"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID       = "user_id"
	LocalEnterpriseID = "enterprise_id"
	LocalRole         = "role"
)

// SessionMiddleware resuelve la identidad de la petición (token o respaldo) y la deja en c.Locals.
func SessionMiddleware(resolver *auth.SessionResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := resolver.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return writeError(c, log, err)
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalEnterpriseID, id.EnterpriseID)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// GetEnterpriseID devuelve la empresa de la identidad (después de SessionMiddleware).
func GetEnterpriseID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEnterpriseID).(string)
	return s
}

// GetIdentity reconstruye la identidad guardada por SessionMiddleware.
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	userID, _ := c.Locals(LocalUserID).(string)
	role, _ := c.Locals(LocalRole).(string)
	return &auth.Identity{UserID: userID, EnterpriseID: GetEnterpriseID(c), Role: role}
}
