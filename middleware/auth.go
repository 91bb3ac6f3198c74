package middleware

import (
	"DocuKeeper/Models"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const defaultSecret = "secret"

// SecretKey returns the JWT signing key, env-overridable so deployments
// do not ship the dev fallback.
func SecretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(defaultSecret)
}

// CurrentUser resolves the jwt cookie into a stored user. Returns nil
// when the session is absent, expired or points at a deleted user.
func CurrentUser(c *fiber.Ctx) *Models.User {
	cookie := c.Cookies("jwt")
	if cookie == "" {
		return nil
	}

	token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return SecretKey(), nil
	})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil
	}

	var user Models.User
	if result := Models.DB.Where("id = ?", claims.Issuer).First(&user); result.Error != nil {
		return nil
	}
	return &user
}

// Authenticated only requires a valid session, without gating a module.
func Authenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not Logged In.",
			})
		}
		c.Locals("user", *user)
		return c.Next()
	}
}

// Verify gates a route group behind a module permission. Unauthenticated
// requests get 401; authenticated users without the module get 403, which
// the SPA renders as its not-permitted page instead of partial data.
func Verify(module Models.Module) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not Logged In.",
			})
		}

		c.Locals("user", *user)

		if !user.HasPermission(module) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You do not have permission to access this page",
			})
		}
		return c.Next()
	}
}
