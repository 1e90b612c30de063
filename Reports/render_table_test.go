package Reports

import (
	"reflect"
	"testing"
	"time"

	"Sparkle/Models"
)

func sampleNormalized() NormalizedReport {
	return NormalizedReport{
		ID:            11,
		Date:          "Feb 9, 2024",
		Time:          "10:15 AM",
		Inspector:     "Sam Okafor",
		OverallRating: "Excellent",
		SitesVisited:  2,
		TimeIn:        "09:00",
		TimeOut:       "11:30",
		Areas: []AreaEntry{
			{Name: "Toilets", Rating: "Good", Comment: "clean"},
		},
		CreatedAt: time.Date(2024, 2, 9, 10, 15, 0, 0, time.UTC),
	}
}

func samplePremise() Models.Premise {
	return Models.Premise{Name: "Downtown Office", Address: "123 Main St"}
}

func TestRenderTableLayoutWithoutFeedback(t *testing.T) {
	rows, err := RenderTable(sampleNormalized(), samplePremise())
	if err != nil {
		t.Fatalf("RenderTable returned error: %v", err)
	}

	want := [][]string{
		{"Inspection Report - Downtown Office"},
		{},
		{"Premise Name", "Downtown Office"},
		{"Address", "123 Main St"},
		{"Inspection Date", "Feb 9, 2024"},
		{"Time", "09:00 - 11:30"},
		{"Inspector", "Sam Okafor"},
		{"Overall Rating", "Excellent"},
		{"Sites Visited", "2"},
		{},
		{"Areas Inspected", "Rating", "Comments"},
		{"Toilets", "Good", "clean"},
	}

	if !reflect.DeepEqual(rows, want) {
		t.Errorf("RenderTable layout mismatch\ngot:  %v\nwant: %v", rows, want)
	}
}

func TestRenderTableAppendsFeedbackBlock(t *testing.T) {
	report := sampleNormalized()
	feedback := "Please double-check the pantry shelves."
	report.ClientFeedback = &feedback

	rows, err := RenderTable(report, samplePremise())
	if err != nil {
		t.Fatalf("RenderTable returned error: %v", err)
	}

	n := len(rows)
	if n < 3 {
		t.Fatalf("too few rows: %d", n)
	}
	tail := rows[n-3:]
	want := [][]string{
		{},
		{"Client Feedback"},
		{feedback},
	}
	if !reflect.DeepEqual(tail, want) {
		t.Errorf("feedback tail = %v, want %v", tail, want)
	}
}

func TestRenderTableEmptyCommentStaysEmptyString(t *testing.T) {
	report := sampleNormalized()
	report.Areas = []AreaEntry{{Name: "Bins Emptied/Replaced", Rating: "Excellent"}}

	rows, err := RenderTable(report, samplePremise())
	if err != nil {
		t.Fatalf("RenderTable returned error: %v", err)
	}

	areaRow := rows[11]
	if !reflect.DeepEqual(areaRow, []string{"Bins Emptied/Replaced", "Excellent", ""}) {
		t.Errorf("area row = %v", areaRow)
	}
}

func TestRenderTableRejectsMissingPremiseFields(t *testing.T) {
	_, err := RenderTable(sampleNormalized(), Models.Premise{Name: "Downtown Office"})
	if err == nil {
		t.Fatal("expected error for missing premise address")
	}
}
