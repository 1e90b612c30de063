package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sparkle/Models"
	"Sparkle/Reports"
	"Sparkle/middleware"
)

// ReportController runs the normalize → aggregate → render pipeline over
// stored inspection rows. The pipeline itself is pure; this controller
// is the data-fetch and export-sink collaborator around it.
type ReportController struct {
	DB      *gorm.DB
	Company Reports.CompanyInfo
}

func NewReportController(db *gorm.DB, company Reports.CompanyInfo) *ReportController {
	return &ReportController{DB: db, Company: company}
}

type premiseReportsResponse struct {
	Premise Models.Premise             `json:"premise"`
	Reports []normalizedReportResponse `json:"reports"`
}

type normalizedReportResponse struct {
	Reports.NormalizedReport
	RatingColor string `json:"rating_color"`
	Age         string `json:"age"`
}

// GetPremiseReports fetches a premise's reports fresh, normalizes and
// aggregates them, and returns display-ready rows, most recent first.
func (rc *ReportController) GetPremiseReports(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid premise ID"})
	}

	var premise Models.Premise
	if err := rc.DB.First(&premise, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Premise not found"})
	}

	var raw []Models.InspectionReport
	if err := rc.DB.Preload("AreaRatings").Where("premise_id = ?", premise.ID).Find(&raw).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load reports"})
	}

	normalized, err := Reports.Normalize(raw)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	sorted := Reports.Aggregate(normalized)
	response := premiseReportsResponse{Premise: premise}
	for _, report := range sorted {
		response.Reports = append(response.Reports, normalizedReportResponse{
			NormalizedReport: report,
			RatingColor:      Reports.RatingColor(report.OverallRating),
			Age:              Reports.RelativeAge(report.CreatedAt, now),
		})
	}

	return ctx.JSON(response)
}

// loadNormalized fetches one report plus its premise and runs the
// normalizer over it.
func (rc *ReportController) loadNormalized(ctx *fiber.Ctx) (Reports.NormalizedReport, Models.Premise, bool) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report ID"})
		return Reports.NormalizedReport{}, Models.Premise{}, false
	}

	var raw Models.InspectionReport
	if err := rc.DB.Preload("AreaRatings").Preload("Premise").First(&raw, id).Error; err != nil {
		ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
		return Reports.NormalizedReport{}, Models.Premise{}, false
	}

	normalized, err := Reports.Normalize([]Models.InspectionReport{raw})
	if err != nil {
		ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		return Reports.NormalizedReport{}, Models.Premise{}, false
	}

	return normalized[0], raw.Premise, true
}

func exportAllowed(ctx *fiber.Ctx) bool {
	caps, _ := ctx.Locals("capabilities").(middleware.Capabilities)
	if !caps.CanExport {
		ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Exporting reports requires inspector access"})
		return false
	}
	return true
}

// ExportHTML returns the report's HTML document plus the suggested PDF
// conversion parameters. The caller (mobile client) performs the actual
// PDF rasterization and share-sheet handoff.
func (rc *ReportController) ExportHTML(ctx *fiber.Ctx) error {
	if !exportAllowed(ctx) {
		return nil
	}
	report, premise, ok := rc.loadNormalized(ctx)
	if !ok {
		return nil
	}

	doc, err := Reports.RenderHTML(report, premise, rc.Company)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"html":   doc,
		"params": Reports.PDFExportParams(report, premise),
	})
}

// ExportXLSX streams the report as a spreadsheet attachment.
func (rc *ReportController) ExportXLSX(ctx *fiber.Ctx) error {
	if !exportAllowed(ctx) {
		return nil
	}
	report, premise, ok := rc.loadNormalized(ctx)
	if !ok {
		return nil
	}

	rows, err := Reports.RenderTable(report, premise)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	buf, err := Reports.TableWorkbook(rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="`+Reports.XLSXFileName(report, premise)+`"`)
	return ctx.Send(buf.Bytes())
}
