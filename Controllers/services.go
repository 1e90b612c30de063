package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sparkle/Models"
	"Sparkle/Validation"
)

// ServiceController handles the cleaning-service catalogue
type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GetServices lists active services; admins get everything with ?all=true
func (sc *ServiceController) GetServices(ctx *fiber.Ctx) error {
	query := sc.DB.Model(&Models.CleaningService{})
	if ctx.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}

	var services []Models.CleaningService
	if err := query.Find(&services).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve services"})
	}
	return ctx.JSON(services)
}

func (sc *ServiceController) GetService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.CleaningService
	if err := sc.DB.First(&service, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	return ctx.JSON(service)
}

func (sc *ServiceController) CreateService(ctx *fiber.Ctx) error {
	var input Models.CleaningServiceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msgs := Validation.Validate(input); len(msgs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	service := Models.CleaningService{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(service)
}

func (sc *ServiceController) UpdateService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.CleaningService
	if err := sc.DB.First(&service, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var input Models.CleaningServiceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{
		"name":             input.Name,
		"description":      input.Description,
		"price":            input.Price,
		"duration_minutes": input.DurationMinutes,
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	sc.DB.Model(&service).Updates(updates)

	return ctx.JSON(service)
}

func (sc *ServiceController) DeleteService(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.CleaningService
	if err := sc.DB.First(&service, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	sc.DB.Delete(&service)
	return ctx.JSON(fiber.Map{"message": "Service deleted successfully"})
}
