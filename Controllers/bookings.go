package Controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"Sparkle/Models"
	"Sparkle/Validation"
	"Sparkle/email"
	"Sparkle/middleware"
)

// BookingController handles booking-related API endpoints
type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// GetBookings lists bookings. Clients see their own; managers see all,
// optionally filtered by status or premise.
func (bc *BookingController) GetBookings(ctx *fiber.Ctx) error {
	user, _ := ctx.Locals("user").(Models.User)
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)

	query := bc.DB.Preload("Premise").Order("date DESC, id DESC")
	if !caps.CanManage {
		query = query.Where("user_id = ?", user.ID)
	}
	if status := ctx.Query("status"); status != "" {
		if !Models.ValidBookingStatus(status) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if premiseID := ctx.Query("premise_id"); premiseID != "" {
		query = query.Where("premise_id = ?", premiseID)
	}

	var bookings []Models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}
	return ctx.JSON(bookings)
}

func (bc *BookingController) GetBooking(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking Models.Booking
	if err := bc.DB.Preload("Premise").First(&booking, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	user, _ := ctx.Locals("user").(Models.User)
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)
	if booking.UserID != user.ID && !caps.CanManage {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}
	return ctx.JSON(booking)
}

// CreateBooking books one or more services for a premise.
func (bc *BookingController) CreateBooking(ctx *fiber.Ctx) error {
	user, _ := ctx.Locals("user").(Models.User)

	var input Models.BookingRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msgs := Validation.Validate(input); len(msgs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	var premise Models.Premise
	if err := bc.DB.First(&premise, input.PremiseID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}

	var serviceCount int64
	bc.DB.Model(&Models.CleaningService{}).
		Where("id IN ? AND active = ?", input.ServiceIDs, true).
		Count(&serviceCount)
	if serviceCount != int64(len(input.ServiceIDs)) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "One or more services are unknown or inactive"})
	}

	serviceIDs, err := json.Marshal(input.ServiceIDs)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	booking := Models.Booking{
		UserID:     user.ID,
		PremiseID:  input.PremiseID,
		Date:       input.Date,
		TimeSlot:   input.TimeSlot,
		ServiceIDs: datatypes.JSON(serviceIDs),
		Notes:      input.Notes,
		Status:     Models.BookingStatusPending,
	}
	if err := bc.DB.Create(&booking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	email.NotifyBooking(booking, premise.Name, user.Name)

	return ctx.Status(fiber.StatusCreated).JSON(booking)
}

// UpdateBookingStatus moves a booking through its lifecycle. Managers
// may apply any legal transition; clients may only cancel their own.
func (bc *BookingController) UpdateBookingStatus(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking Models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var input Models.BookingStatusRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, _ := ctx.Locals("user").(Models.User)
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)
	if !caps.CanManage {
		if booking.UserID != user.ID || input.Status != Models.BookingStatusCancelled {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You may only cancel your own booking"})
		}
	}

	if err := booking.TransitionTo(input.Status); err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err := bc.DB.Save(&booking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	return ctx.JSON(booking)
}

// DeleteBooking removes a booking record entirely. Capability-gated.
func (bc *BookingController) DeleteBooking(ctx *fiber.Ctx) error {
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)
	if !caps.CanDelete {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Deleting bookings requires admin access"})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking Models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	bc.DB.Delete(&booking)
	return ctx.JSON(fiber.Map{"message": "Booking deleted successfully"})
}
