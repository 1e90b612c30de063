package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sparkle/Models"
	"Sparkle/Validation"
	"Sparkle/middleware"
)

// InspectionController handles inspection report submission and listing.
type InspectionController struct {
	DB *gorm.DB
}

func NewInspectionController(db *gorm.DB) *InspectionController {
	return &InspectionController{DB: db}
}

// CreateInspection files a new quality-control report. Only the areas
// the inspector actually rated are stored; nothing is backfilled.
func (ic *InspectionController) CreateInspection(ctx *fiber.Ctx) error {
	var input Models.InspectionReportRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msgs := Validation.Validate(input); len(msgs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	var premise Models.Premise
	if err := ic.DB.First(&premise, input.PremiseID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}

	user, _ := ctx.Locals("user").(Models.User)
	report := Models.InspectionReport{
		PremiseID:      input.PremiseID,
		Inspector:      user.Name,
		Date:           input.Date,
		TimeIn:         input.TimeIn,
		TimeOut:        input.TimeOut,
		SitesVisited:   input.SitesVisited,
		OverallRating:  input.OverallRating,
		ClientFeedback: input.ClientFeedback,
	}
	for _, area := range input.AreaRatings {
		report.AreaRatings = append(report.AreaRatings, Models.AreaRating{
			Area:    area.Area,
			Rating:  area.Rating,
			Comment: area.Comment,
		})
	}

	if err := ic.DB.Create(&report).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save inspection report"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(report)
}

// GetInspection returns one raw report with its area rows.
func (ic *InspectionController) GetInspection(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report ID"})
	}

	var report Models.InspectionReport
	if err := ic.DB.Preload("AreaRatings").Preload("Premise").First(&report, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	return ctx.JSON(report)
}

// DeleteInspection removes a report and its area rows.
func (ic *InspectionController) DeleteInspection(ctx *fiber.Ctx) error {
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)
	if !caps.CanDelete {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Deleting reports requires admin access"})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report ID"})
	}

	var report Models.InspectionReport
	if err := ic.DB.First(&report, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	ic.DB.Select("AreaRatings").Delete(&report)
	return ctx.JSON(fiber.Map{"message": "Report deleted successfully"})
}
