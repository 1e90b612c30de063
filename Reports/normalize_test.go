package Reports

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"Sparkle/Models"
)

func rawReport(id uint) Models.InspectionReport {
	return Models.InspectionReport{
		Model:         gorm.Model{ID: id, CreatedAt: time.Date(2024, 1, 5, 14, 5, 0, 0, time.UTC)},
		PremiseID:     1,
		Inspector:     "Dana Reyes",
		Date:          "2024-01-05",
		TimeIn:        "09:00",
		TimeOut:       "11:30",
		SitesVisited:  2,
		OverallRating: Models.OverallExcellent,
	}
}

func TestNormalizeFormatsDateAndTime(t *testing.T) {
	raw := rawReport(7)
	got, err := Normalize([]Models.InspectionReport{raw})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 report, got %d", len(got))
	}
	if got[0].Date != "Jan 5, 2024" {
		t.Errorf("date = %q, want %q", got[0].Date, "Jan 5, 2024")
	}
	if got[0].Time != "2:05 PM" {
		t.Errorf("time = %q, want %q", got[0].Time, "2:05 PM")
	}
	if got[0].ClientFeedback != nil {
		t.Errorf("absent feedback should stay nil, got %q", *got[0].ClientFeedback)
	}
}

func TestNormalizePreservesAreaInsertionOrder(t *testing.T) {
	raw := rawReport(1)
	raw.AreaRatings = []Models.AreaRating{
		{Area: "Toilets", Rating: Models.AreaGood},
		{Area: "Floors Cleaned", Rating: Models.AreaExcellent},
		{Area: "Kitchen/Pantry", Rating: Models.AreaVeryGood},
	}

	got, err := Normalize([]Models.InspectionReport{raw})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	want := []string{"Toilets", "Floors Cleaned", "Kitchen/Pantry"}
	if len(got[0].Areas) != len(want) {
		t.Fatalf("expected %d areas, got %d", len(want), len(got[0].Areas))
	}
	for i, name := range want {
		if got[0].Areas[i].Name != name {
			t.Errorf("area[%d] = %q, want %q", i, got[0].Areas[i].Name, name)
		}
	}
}

func TestNormalizeDuplicateAreaLastWriteWins(t *testing.T) {
	raw := rawReport(1)
	raw.AreaRatings = []Models.AreaRating{
		{Area: "Floors Cleaned", Rating: Models.AreaGood},
		{Area: "Bathrooms", Rating: Models.AreaExcellent},
		{Area: "Floors Cleaned", Rating: Models.AreaPoor, Comment: "streaks near entrance"},
	}

	got, err := Normalize([]Models.InspectionReport{raw})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	areas := got[0].Areas
	if len(areas) != 2 {
		t.Fatalf("expected 2 unique areas, got %d", len(areas))
	}
	// The duplicate keeps its first-seen position but takes the later value.
	if areas[0].Name != "Floors Cleaned" || areas[0].Rating != Models.AreaPoor {
		t.Errorf("areas[0] = %+v, want Floors Cleaned rated Poor", areas[0])
	}
	if areas[0].Comment != "streaks near entrance" {
		t.Errorf("comment not overwritten, got %q", areas[0].Comment)
	}

	entry, ok := got[0].Area("Floors Cleaned")
	if !ok || entry.Rating != Models.AreaPoor {
		t.Errorf("Area lookup = %+v ok=%v, want Poor", entry, ok)
	}
}

func TestNormalizeUnparseableDate(t *testing.T) {
	raw := rawReport(42)
	raw.Date = "05/01/2024"

	_, err := Normalize([]Models.InspectionReport{raw})
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.ReportID != 42 || formatErr.Value != "05/01/2024" {
		t.Errorf("FormatError = %+v, want report 42 with raw value", formatErr)
	}
}

func TestNormalizeMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Models.InspectionReport)
		field  string
	}{
		{"missing id", func(r *Models.InspectionReport) { r.ID = 0 }, "id"},
		{"missing inspector", func(r *Models.InspectionReport) { r.Inspector = "" }, "inspector"},
		{"missing rating", func(r *Models.InspectionReport) { r.OverallRating = "" }, "overall_rating"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := rawReport(9)
			tc.mutate(&raw)
			_, err := Normalize([]Models.InspectionReport{raw})
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Field != tc.field {
				t.Errorf("field = %q, want %q", valErr.Field, tc.field)
			}
		})
	}
}

func TestNormalizeEmptyAreaListIsValid(t *testing.T) {
	raw := rawReport(3)
	got, err := Normalize([]Models.InspectionReport{raw})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(got[0].Areas) != 0 {
		t.Errorf("expected no synthetic areas, got %d", len(got[0].Areas))
	}
}
