package Reports

import (
	"fmt"
	"strconv"

	"Sparkle/Models"
)

// RenderTable transcribes one report into an ordered row/cell layout for
// spreadsheet export. Every cell is a string; a serializer must preserve
// the layout exactly so reading the sheet back yields identical content.
func RenderTable(report NormalizedReport, premise Models.Premise) ([][]string, error) {
	if err := checkRenderInputs(report, premise); err != nil {
		return nil, err
	}

	rows := [][]string{
		{fmt.Sprintf("Inspection Report - %s", premise.Name)},
		{},
		{"Premise Name", premise.Name},
		{"Address", premise.Address},
		{"Inspection Date", report.Date},
		{"Time", fmt.Sprintf("%s - %s", report.TimeIn, report.TimeOut)},
		{"Inspector", report.Inspector},
		{"Overall Rating", report.OverallRating},
		{"Sites Visited", strconv.Itoa(report.SitesVisited)},
		{},
		{"Areas Inspected", "Rating", "Comments"},
	}

	for _, area := range report.Areas {
		rows = append(rows, []string{area.Name, area.Rating, area.Comment})
	}

	if report.ClientFeedback != nil && *report.ClientFeedback != "" {
		rows = append(rows,
			[]string{},
			[]string{"Client Feedback"},
			[]string{*report.ClientFeedback},
		)
	}

	return rows, nil
}

// XLSXFileName suggests a filename for the spreadsheet export.
func XLSXFileName(report NormalizedReport, premise Models.Premise) string {
	return fmt.Sprintf("Inspection Report - %s - %s.xlsx", premise.Name, report.Date)
}
