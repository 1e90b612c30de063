package Validation

import (
	"testing"

	"Sparkle/Models"
)

func TestValidateInspectionRequest(t *testing.T) {
	valid := Models.InspectionReportRequest{
		PremiseID:     1,
		Date:          "2024-02-09",
		OverallRating: "Good",
		AreaRatings: []Models.AreaRatingRequest{
			{Area: "Toilets", Rating: "Very Good"},
		},
	}
	if msgs := Validate(valid); len(msgs) != 0 {
		t.Errorf("valid request rejected: %v", msgs)
	}

	invalid := valid
	invalid.OverallRating = "Amazing"
	if msgs := Validate(invalid); len(msgs) == 0 {
		t.Error("unknown overall rating accepted")
	}

	badDate := valid
	badDate.Date = "09/02/2024"
	if msgs := Validate(badDate); len(msgs) == 0 {
		t.Error("non-ISO date accepted")
	}

	badArea := valid
	badArea.AreaRatings = []Models.AreaRatingRequest{{Area: "Toilets", Rating: "Fair"}}
	if msgs := Validate(badArea); len(msgs) == 0 {
		t.Error("per-area rating outside its enumeration accepted")
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	if msgs := Validate(Models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "123"}); len(msgs) == 0 {
		t.Error("bad email and short password accepted")
	}
}
