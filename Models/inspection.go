package Models

import "gorm.io/gorm"

// Overall report ratings.
const (
	OverallPoor      = "Poor"
	OverallFair      = "Fair"
	OverallGood      = "Good"
	OverallExcellent = "Excellent"
)

// Per-area ratings. Note this enumeration differs from the overall one:
// it has "Very Good" instead of "Fair".
const (
	AreaPoor      = "Poor"
	AreaGood      = "Good"
	AreaVeryGood  = "Very Good"
	AreaExcellent = "Excellent"
)

// Conventional area names offered by the inspection form. Area names in
// stored rows are free text; this list is not enforced.
var ConventionalAreas = []string{
	"Floors Cleaned",
	"Toilets",
	"Bathrooms",
	"Kitchen/Pantry",
	"Dusting/Furniture",
	"Bins Emptied/Replaced",
	"Other",
}

// InspectionReport is a quality-control visit record for a premise.
// Date is the day of the visit (YYYY-MM-DD); CreatedAt is when the
// report was filed, and drives the displayed filing time.
type InspectionReport struct {
	gorm.Model
	PremiseID      uint   `json:"premise_id" gorm:"index;not null"`
	Inspector      string `json:"inspector" gorm:"size:255;not null"`
	Date           string `json:"date" gorm:"not null"`
	TimeIn         string `json:"time_in"`
	TimeOut        string `json:"time_out"`
	SitesVisited   int    `json:"sites_visited"`
	OverallRating  string `json:"overall_rating" gorm:"size:20;not null"`
	ClientFeedback string `json:"client_feedback" gorm:"type:text"`

	// Relationships
	Premise     Premise      `json:"premise,omitempty" gorm:"foreignKey:PremiseID"`
	AreaRatings []AreaRating `json:"area_ratings,omitempty" gorm:"foreignKey:InspectionReportID;constraint:OnDelete:CASCADE"`
}

// AreaRating is a qualitative score for one cleaned zone within a report.
type AreaRating struct {
	gorm.Model
	InspectionReportID uint   `json:"inspection_report_id" gorm:"index;not null"`
	Area               string `json:"area" gorm:"size:255;not null"`
	Rating             string `json:"rating" gorm:"size:20;not null"`
	Comment            string `json:"comment" gorm:"type:text"`
}

type InspectionReportRequest struct {
	PremiseID      uint                `json:"premise_id" validate:"required"`
	Date           string              `json:"date" validate:"required,datetime=2006-01-02"`
	TimeIn         string              `json:"time_in"`
	TimeOut        string              `json:"time_out"`
	SitesVisited   int                 `json:"sites_visited" validate:"gte=0"`
	OverallRating  string              `json:"overall_rating" validate:"required,oneof=Poor Fair Good Excellent"`
	ClientFeedback string              `json:"client_feedback"`
	AreaRatings    []AreaRatingRequest `json:"area_ratings" validate:"dive"`
}

type AreaRatingRequest struct {
	Area    string `json:"area" validate:"required"`
	Rating  string `json:"rating" validate:"required,oneof=Poor Good 'Very Good' Excellent"`
	Comment string `json:"comment"`
}
