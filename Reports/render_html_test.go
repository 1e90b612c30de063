package Reports

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func renderSampleHTML(t *testing.T, report NormalizedReport) (*goquery.Document, string) {
	t.Helper()
	doc, err := RenderHTML(report, samplePremise(), DefaultCompany())
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}
	return parsed, doc
}

func TestRenderHTMLContainsDetailsAndCompany(t *testing.T) {
	parsed, _ := renderSampleHTML(t, sampleNormalized())

	text := parsed.Find("body").Text()
	for _, want := range []string{
		"Downtown Office", "123 Main St", "Feb 9, 2024",
		"Sam Okafor", "Excellent", DefaultCompany().Name,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderHTMLEscapesFreeText(t *testing.T) {
	report := sampleNormalized()
	report.Areas = []AreaEntry{
		{Name: "Other", Rating: "Poor", Comment: "<script>alert(1)</script>"},
	}
	feedback := `Great job on the "lobby" & stairs`
	report.ClientFeedback = &feedback

	parsed, raw := renderSampleHTML(t, report)

	if strings.Contains(raw, "<script>") {
		t.Error("comment injected an unescaped script tag")
	}
	if parsed.Find("script").Length() != 0 {
		t.Error("parsed document contains a script element")
	}
	// The escaped text must still read back intact.
	if !strings.Contains(parsed.Find(".comment").Text(), "<script>alert(1)</script>") {
		t.Error("escaped comment text was lost")
	}
	if !strings.Contains(parsed.Find(".feedback").Text(), feedback) {
		t.Error("escaped feedback text was lost")
	}
}

func TestRenderHTMLAreaOrderAndColors(t *testing.T) {
	report := sampleNormalized()
	report.Areas = []AreaEntry{
		{Name: "Kitchen/Pantry", Rating: "Very Good"},
		{Name: "Toilets", Rating: "Poor"},
		{Name: "Dusting/Furniture", Rating: "Excellent"},
	}

	parsed, raw := renderSampleHTML(t, report)

	var names []string
	parsed.Find(".area").Each(func(_ int, s *goquery.Selection) {
		names = append(names, strings.SplitN(s.Text(), ":", 2)[0])
	})
	want := []string{"Kitchen/Pantry", "Toilets", "Dusting/Furniture"}
	if len(names) != len(want) {
		t.Fatalf("got %d areas, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("area %d = %q, want %q", i, names[i], want[i])
		}
	}

	for _, color := range []string{ColorAccentMedium, ColorDanger, ColorAccentStrong} {
		if !strings.Contains(raw, color) {
			t.Errorf("document missing rating color %s", color)
		}
	}
}

func TestRenderHTMLOmitsFeedbackWhenAbsent(t *testing.T) {
	parsed, _ := renderSampleHTML(t, sampleNormalized())
	if parsed.Find(".feedback").Length() != 0 {
		t.Error("feedback block rendered for a report with no feedback")
	}
}

func TestRenderHTMLEmptyAreaListRenders(t *testing.T) {
	report := sampleNormalized()
	report.Areas = nil
	_, raw := renderSampleHTML(t, report)
	if !strings.Contains(raw, "No area ratings recorded") {
		t.Error("empty area list should render a placeholder, not fail")
	}
}

func TestPDFExportParams(t *testing.T) {
	params := PDFExportParams(sampleNormalized(), samplePremise())
	if params.PageWidth != 612 || params.PageHeight != 792 {
		t.Errorf("page size = %vx%v, want 612x792", params.PageWidth, params.PageHeight)
	}
	if !strings.Contains(params.FileName, "Downtown Office") {
		t.Errorf("filename %q missing premise name", params.FileName)
	}
}
