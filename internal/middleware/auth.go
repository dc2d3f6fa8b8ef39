package middleware

import (
	"strings"

	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// CallerIDKey is the Locals key holding the verified caller identity.
const CallerIDKey = "callerID"

// RequireAuth validates the bearer token and stores the verified caller
// identity in the request context. The acting identity always comes from the
// token, never from the path or body.
func RequireAuth(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.ErrorResponse(c, "Missing Authorization header", fiber.StatusUnauthorized, "auth.token.missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, "Invalid Authorization header format", fiber.StatusUnauthorized, "auth.token.malformed")
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			return utils.CustomErrorResponse(c, err, "auth.token.invalid")
		}

		c.Locals(CallerIDKey, userID)

		return c.Next()
	}
}
