package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/granapp/grana/internal/models"
)

// AuthRequired resolves the bearer access token to a user once at the
// boundary and passes the identity to handlers through request locals.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthenticated")
	}

	claims, err := handler.issuer.Parse(rawToken)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthenticated")
	}

	user, err := handler.auth.GetUser(c.Context(), claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthenticated")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}
