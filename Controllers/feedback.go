package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sparkle/Models"
	"Sparkle/Validation"
	"Sparkle/middleware"
)

// FeedbackController handles client feedback endpoints
type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

func (fc *FeedbackController) CreateFeedback(ctx *fiber.Ctx) error {
	user, _ := ctx.Locals("user").(Models.User)

	var input Models.FeedbackRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msgs := Validation.Validate(input); len(msgs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	if input.BookingID != nil {
		var booking Models.Booking
		if err := fc.DB.First(&booking, *input.BookingID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		if booking.UserID != user.ID {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
		}
	}

	feedback := Models.Feedback{
		UserID:    user.ID,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := fc.DB.Create(&feedback).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save feedback"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(feedback)
}

// GetFeedback lists all feedback for admins.
func (fc *FeedbackController) GetFeedback(ctx *fiber.Ctx) error {
	var feedback []Models.Feedback
	if err := fc.DB.Preload("User").Order("created_at DESC").Find(&feedback).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve feedback"})
	}
	return ctx.JSON(feedback)
}

func (fc *FeedbackController) DeleteFeedback(ctx *fiber.Ctx) error {
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)
	if !caps.CanDelete {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Deleting feedback requires admin access"})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feedback ID"})
	}

	var feedback Models.Feedback
	if err := fc.DB.First(&feedback, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feedback not found"})
	}

	fc.DB.Delete(&feedback)
	return ctx.JSON(fiber.Map{"message": "Feedback deleted successfully"})
}
