package PreviewData

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sparkle/Models"
	"Sparkle/Reports"
)

type reportRow struct {
	ID        uint
	Date      string
	Time      string
	Inspector string
	Rating    string
	Color     string
	Age       string
	AreaCount int
}

type premiseSection struct {
	Premise Models.Premise
	Reports []reportRow
}

// ShowAllReports renders an admin overview of every premise's inspection
// reports, grouped by premise and most recent first.
func ShowAllReports(c *fiber.Ctx) error {
	var premises []Models.Premise
	if err := Models.DB.Find(&premises).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load premises")
	}

	now := time.Now()
	var sections []premiseSection
	for _, premise := range premises {
		var raw []Models.InspectionReport
		if err := Models.DB.Preload("AreaRatings").Where("premise_id = ?", premise.ID).Find(&raw).Error; err != nil {
			log.Println(err)
			continue
		}

		normalized, err := Reports.Normalize(raw)
		if err != nil {
			log.Printf("skipping premise %d: %v", premise.ID, err)
			continue
		}

		section := premiseSection{Premise: premise}
		for _, report := range Reports.Aggregate(normalized) {
			section.Reports = append(section.Reports, reportRow{
				ID:        report.ID,
				Date:      report.Date,
				Time:      report.Time,
				Inspector: report.Inspector,
				Rating:    report.OverallRating,
				Color:     Reports.RatingColor(report.OverallRating),
				Age:       Reports.RelativeAge(report.CreatedAt, now),
				AreaCount: len(report.Areas),
			})
		}
		sections = append(sections, section)
	}

	return c.Render("reports", fiber.Map{
		"Sections": sections,
	})
}
