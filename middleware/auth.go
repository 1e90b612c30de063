package middleware

import (
	"Sparkle/Models"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SecretKey signs session JWTs. Override with JWT_SECRET in production.
var SecretKey = func() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "secret"
}()

// Capabilities is what the authenticated user is allowed to do. Handlers
// read these from locals instead of re-deriving identity checks inline.
type Capabilities struct {
	CanExport bool `json:"can_export"`
	CanDelete bool `json:"can_delete"`
	CanManage bool `json:"can_manage"`
}

// CapabilitiesFor derives the capability set from a permission level.
func CapabilitiesFor(user Models.User) Capabilities {
	return Capabilities{
		CanExport: user.Permission >= Models.PermissionInspector,
		CanDelete: user.Permission >= Models.PermissionAdmin,
		CanManage: user.Permission >= Models.PermissionAdmin,
	}
}

func Verify(requiredPermission int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get JWT from cookies
		cookie := c.Cookies("jwt")
		if cookie == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not Logged In.",
			})
		}

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(SecretKey), nil
		})

		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Extract claims
		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token claims",
			})
		}

		// Get user from database
		var user Models.User
		result := Models.DB.Where("id = ?", claims.Issuer).First(&user)
		if result.Error != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}

		// Store user and derived capabilities for handlers
		c.Locals("user", user)
		c.Locals("capabilities", CapabilitiesFor(user))

		// Check if user has the required permission level
		if user.Permission >= requiredPermission {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions to access this resource",
		})
	}
}
