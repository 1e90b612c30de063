package Reports

import (
	"fmt"
	"html"
	"strings"
	"time"

	"Sparkle/Models"
)

// PDFParams are the suggested parameters handed to the PDF conversion
// collaborator along with the HTML source. US Letter in points.
type PDFParams struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	FileName   string  `json:"file_name"`
}

// PDFExportParams suggests conversion parameters for a rendered report.
func PDFExportParams(report NormalizedReport, premise Models.Premise) PDFParams {
	return PDFParams{
		PageWidth:  612,
		PageHeight: 792,
		FileName:   fmt.Sprintf("Inspection Report - %s - %s.pdf", premise.Name, report.Date),
	}
}

// RenderHTML produces a self-contained HTML document for one report.
// All interpolated free text is escaped. Apart from the generation
// timestamp in the footer, the output is a pure function of its inputs.
// An empty area list renders as a valid "no ratings recorded" document.
func RenderHTML(report NormalizedReport, premise Models.Premise, company CompanyInfo) (string, error) {
	if err := checkRenderInputs(report, premise); err != nil {
		return "", err
	}

	esc := html.EscapeString
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Inspection Report - %s</title>\n", esc(premise.Name))
	b.WriteString(`<style>
body { font-family: Helvetica, Arial, sans-serif; color: #212121; margin: 32px; }
.header { text-align: center; border-bottom: 2px solid #2E7D32; padding-bottom: 12px; }
.header img { max-height: 64px; }
.slogan { color: #757575; font-style: italic; }
h1 { font-size: 20px; margin: 24px 0 8px; }
h2 { font-size: 16px; border-bottom: 1px solid #E0E0E0; padding-bottom: 4px; }
table.details td { padding: 3px 12px 3px 0; vertical-align: top; }
td.label { color: #757575; white-space: nowrap; }
.rating { font-weight: bold; }
.area { margin: 6px 0; }
.comment { color: #616161; margin-left: 12px; }
.feedback { background: #F5F5F5; padding: 10px; border-radius: 4px; }
.footer { margin-top: 36px; border-top: 1px solid #E0E0E0; padding-top: 8px; color: #9E9E9E; font-size: 11px; }
</style>
</head>
<body>
`)

	// Letterhead
	b.WriteString("<div class=\"header\">\n")
	if company.LogoURL != "" {
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\">\n", esc(company.LogoURL), esc(company.Name))
	}
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(company.Name))
	if company.Slogan != "" {
		fmt.Fprintf(&b, "<div class=\"slogan\">%s</div>\n", esc(company.Slogan))
	}
	fmt.Fprintf(&b, "<div>%s &middot; %s</div>\n", esc(company.Address), esc(company.Phone))
	b.WriteString("</div>\n")

	fmt.Fprintf(&b, "<h1>Inspection Report - %s</h1>\n", esc(premise.Name))

	// Details block
	b.WriteString("<h2>Inspection Details</h2>\n<table class=\"details\">\n")
	writeDetailRow(&b, "Premise", esc(premise.Name))
	writeDetailRow(&b, "Address", esc(premise.Address))
	writeDetailRow(&b, "Date", esc(report.Date))
	writeDetailRow(&b, "Time In", esc(report.TimeIn))
	writeDetailRow(&b, "Time Out", esc(report.TimeOut))
	writeDetailRow(&b, "Inspector", esc(report.Inspector))
	writeDetailRow(&b, "Overall Rating",
		fmt.Sprintf("<span class=\"rating\" style=\"color:%s\">%s</span>",
			RatingColor(report.OverallRating), esc(report.OverallRating)))
	writeDetailRow(&b, "Sites Visited", fmt.Sprintf("%d", report.SitesVisited))
	b.WriteString("</table>\n")

	// Areas, in first-seen order
	b.WriteString("<h2>Areas Inspected</h2>\n")
	if len(report.Areas) == 0 {
		b.WriteString("<div class=\"area\">No area ratings recorded.</div>\n")
	}
	for _, area := range report.Areas {
		fmt.Fprintf(&b, "<div class=\"area\">%s: <span class=\"rating\" style=\"color:%s\">%s</span>",
			esc(area.Name), RatingColor(area.Rating), esc(area.Rating))
		if area.Comment != "" {
			fmt.Fprintf(&b, "<div class=\"comment\">%s</div>", esc(area.Comment))
		}
		b.WriteString("</div>\n")
	}

	// Feedback only when present and non-empty
	if report.ClientFeedback != nil && *report.ClientFeedback != "" {
		b.WriteString("<h2>Client Feedback</h2>\n")
		fmt.Fprintf(&b, "<div class=\"feedback\">%s</div>\n", esc(*report.ClientFeedback))
	}

	b.WriteString("<div class=\"footer\">\n")
	fmt.Fprintf(&b, "%s &middot; %s &middot; %s<br>\n", esc(company.Phone), esc(company.Email), esc(company.Website))
	fmt.Fprintf(&b, "Generated %s\n", time.Now().Format("Jan 2, 2006 3:04 PM"))
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String(), nil
}

func writeDetailRow(b *strings.Builder, label, valueHTML string) {
	fmt.Fprintf(b, "<tr><td class=\"label\">%s</td><td>%s</td></tr>\n", label, valueHTML)
}

func checkRenderInputs(report NormalizedReport, premise Models.Premise) error {
	if report.ID == 0 {
		return &ValidationError{ReportID: report.ID, Field: "id"}
	}
	if premise.Name == "" {
		return &ValidationError{ReportID: report.ID, Field: "premise name"}
	}
	if premise.Address == "" {
		return &ValidationError{ReportID: report.ID, Field: "premise address"}
	}
	seen := make(map[string]struct{}, len(report.Areas))
	for _, area := range report.Areas {
		if _, dup := seen[area.Name]; dup {
			return &RenderError{ReportID: report.ID, Reason: fmt.Sprintf("duplicate area entry %q", area.Name)}
		}
		seen[area.Name] = struct{}{}
	}
	return nil
}
