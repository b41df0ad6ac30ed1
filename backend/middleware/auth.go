package middleware

import (
	"quizbank/backend/config"
	"quizbank/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := utils.ExtractIdentityFromToken(c, cfg.JWTSecret)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !identity.IsAdmin() {
			return utils.Forbidden(c, "Forbidden - Admin access required")
		}
		return c.Next()
	}
}

// CurrentIdentity returns the caller identity stored by AuthMiddleware.
func CurrentIdentity(c *fiber.Ctx) (utils.Identity, bool) {
	identity, ok := c.Locals(identityKey).(utils.Identity)
	return identity, ok
}
