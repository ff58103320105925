package auth

import (
	"log"
	"strings"

	"github.com/ryanpavini/sistema-na-backend/internal/config"
	"github.com/ryanpavini/sistema-na-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// Identity is the resolved subject of a verified bearer token, attached to
// the request context for handlers to consume.
type Identity struct {
	AdminID string
}

const identityKey = "identity"

// Protected verifies the bearer token and attaches the Identity. The
// downstream handler never runs for a missing or invalid token.
func Protected(tokens *TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Unauthorized(c, "Invalid token format")
		}

		subject, ok := tokens.Verify(tokenParts[1])
		if !ok {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Locals(identityKey, Identity{AdminID: subject})
		return c.Next()
	}
}

// IdentityFromCtx returns the Identity attached by Protected.
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityKey).(Identity)
	return identity, ok
}

// APIKeyProtected gates every request on the shared X-API-Key header. It runs
// before authentication is even considered.
func APIKeyProtected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.APIKey == "" {
			log.Println("API key is not configured on the server")
			return response.InternalError(c, "Internal server error")
		}

		if c.Get("X-API-Key") != cfg.APIKey {
			return response.Unauthorized(c, "Invalid API key")
		}

		return c.Next()
	}
}
