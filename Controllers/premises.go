package Controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sparkle/Models"
	"Sparkle/Validation"
)

// PremiseController handles premise-related API endpoints
type PremiseController struct {
	DB *gorm.DB
}

// NewPremiseController creates a new PremiseController
func NewPremiseController(db *gorm.DB) *PremiseController {
	return &PremiseController{DB: db}
}

// GetPremises retrieves all premises
func (pc *PremiseController) GetPremises(ctx *fiber.Ctx) error {
	var premises []Models.Premise
	result := pc.DB.Find(&premises)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve premises"})
	}
	return ctx.JSON(premises)
}

// GetPremise retrieves a single premise by ID
func (pc *PremiseController) GetPremise(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid premise ID"})
	}

	var premise Models.Premise
	result := pc.DB.First(&premise, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}
	return ctx.JSON(premise)
}

// CreatePremise creates a new premise
func (pc *PremiseController) CreatePremise(ctx *fiber.Ctx) error {
	var input Models.PremiseRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msgs := Validation.Validate(input); len(msgs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	premise := Models.Premise{
		Name:         input.Name,
		Address:      input.Address,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
	}

	result := pc.DB.Create(&premise)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "UNIQUE") ||
			strings.Contains(result.Error.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A premise with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create premise",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(premise)
}

// UpdatePremise updates an existing premise
func (pc *PremiseController) UpdatePremise(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid premise ID"})
	}

	var premise Models.Premise
	result := pc.DB.First(&premise, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}

	var input Models.PremiseRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pc.DB.Model(&premise).Updates(Models.Premise{
		Name:         input.Name,
		Address:      input.Address,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
	})

	return ctx.JSON(premise)
}

// DeletePremise soft deletes a premise
func (pc *PremiseController) DeletePremise(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid premise ID"})
	}

	var premise Models.Premise
	result := pc.DB.First(&premise, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}

	pc.DB.Delete(&premise)
	return ctx.JSON(fiber.Map{"message": "Premise deleted successfully"})
}

// UploadPremisePhoto stores a site photo, resized to a sane width before
// hitting disk.
func (pc *PremiseController) UploadPremisePhoto(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid premise ID"})
	}

	var premise Models.Premise
	if err := pc.DB.First(&premise, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing photo file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot open uploaded file"})
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Uploaded file is not a valid image"})
	}

	if img.Bounds().Dx() > 1024 {
		img = imaging.Resize(img, 1024, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll("PremisePhotos", 0755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}
	photoPath := filepath.Join("PremisePhotos", fmt.Sprintf("premise_%d.jpg", premise.ID))
	if err := imaging.Save(img, photoPath, imaging.JPEGQuality(85)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	premise.PhotoPath = photoPath
	pc.DB.Save(&premise)

	return ctx.JSON(fiber.Map{"message": "Photo uploaded", "photo_path": photoPath})
}
