package Reports

import (
	"time"

	"Sparkle/Models"
)

// AreaEntry is one cleaned zone's score within a normalized report.
type AreaEntry struct {
	Name    string `json:"name"`
	Rating  string `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// NormalizedReport is the display-ready form of a raw inspection report
// plus its area ratings. Areas keeps first-seen insertion order with
// unique names; CreatedAt is retained raw for sorting.
type NormalizedReport struct {
	ID             uint        `json:"id"`
	Date           string      `json:"date"` // e.g. "Jan 5, 2024"
	Time           string      `json:"time"` // e.g. "2:05 PM", from created_at
	Inspector      string      `json:"inspector"`
	OverallRating  string      `json:"overall_rating"`
	SitesVisited   int         `json:"sites_visited"`
	Areas          []AreaEntry `json:"areas"`
	ClientFeedback *string     `json:"client_feedback,omitempty"`
	TimeIn         string      `json:"time_in"`
	TimeOut        string      `json:"time_out"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Area looks up an area entry by exact name.
func (r *NormalizedReport) Area(name string) (AreaEntry, bool) {
	for _, entry := range r.Areas {
		if entry.Name == name {
			return entry, true
		}
	}
	return AreaEntry{}, false
}

// Normalize converts raw report rows (with their joined area rows) into
// normalized reports, one per input row. It is a pure function: no
// defaults are substituted for required fields, and no synthetic areas
// are ever injected. Duplicate area names within one report resolve
// last-write-wins, keeping the name's first-seen position.
func Normalize(rawReports []Models.InspectionReport) ([]NormalizedReport, error) {
	normalized := make([]NormalizedReport, 0, len(rawReports))
	for i := range rawReports {
		report, err := normalizeOne(&rawReports[i])
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, report)
	}
	return normalized, nil
}

func normalizeOne(raw *Models.InspectionReport) (NormalizedReport, error) {
	if raw.ID == 0 {
		return NormalizedReport{}, &ValidationError{ReportID: raw.ID, Field: "id"}
	}
	if raw.Inspector == "" {
		return NormalizedReport{}, &ValidationError{ReportID: raw.ID, Field: "inspector"}
	}
	if raw.OverallRating == "" {
		return NormalizedReport{}, &ValidationError{ReportID: raw.ID, Field: "overall_rating"}
	}

	// The visit day comes from the date column; the filing time comes
	// from created_at. The split mirrors what the app displays.
	day, err := time.Parse("2006-01-02", raw.Date)
	if err != nil {
		return NormalizedReport{}, &FormatError{ReportID: raw.ID, Field: "date", Value: raw.Date}
	}

	report := NormalizedReport{
		ID:            raw.ID,
		Date:          day.Format("Jan 2, 2006"),
		Time:          raw.CreatedAt.Format("3:04 PM"),
		Inspector:     raw.Inspector,
		OverallRating: raw.OverallRating,
		SitesVisited:  raw.SitesVisited,
		TimeIn:        raw.TimeIn,
		TimeOut:       raw.TimeOut,
		CreatedAt:     raw.CreatedAt,
	}

	if raw.ClientFeedback != "" {
		feedback := raw.ClientFeedback
		report.ClientFeedback = &feedback
	}

	index := make(map[string]int, len(raw.AreaRatings))
	for _, row := range raw.AreaRatings {
		entry := AreaEntry{Name: row.Area, Rating: row.Rating, Comment: row.Comment}
		if pos, seen := index[row.Area]; seen {
			report.Areas[pos] = entry
			continue
		}
		index[row.Area] = len(report.Areas)
		report.Areas = append(report.Areas, entry)
	}

	return report, nil
}
