package Models

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FCMToken stores a device push token. Delivery is handled by an
// external service; the API only keeps tokens current.
type FCMToken struct {
	gorm.Model
	UserID *uint  `json:"user_id" gorm:"index"`
	Value  string `json:"value" gorm:"uniqueIndex;size:512"`
}

type UpdateTokenRequest struct {
	Value string `json:"value" validate:"required"`
}

func UpdateToken(c *fiber.Ctx) error {
	var req UpdateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Token value is required",
		})
	}

	var token FCMToken
	result := DB.Where("value = ?", req.Value).First(&token)
	if result.Error != nil {
		token = FCMToken{Value: req.Value}
	}

	if user, ok := c.Locals("user").(User); ok {
		id := user.ID
		token.UserID = &id
	}

	if err := DB.Save(&token).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store token",
		})
	}

	return c.JSON(fiber.Map{"message": "Token updated"})
}
