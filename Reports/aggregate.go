package Reports

import (
	"fmt"
	"sort"
	"time"
)

// Color tokens used when rendering ratings. The mapping is an exact,
// case-sensitive label lookup; ratings are never compared numerically.
const (
	ColorAccentStrong = "#2E7D32"
	ColorAccentMedium = "#7CB342"
	ColorWarning      = "#F9A825"
	ColorDanger       = "#C62828"
	ColorNeutralGray  = "#9E9E9E"
)

// RatingColor maps a rating label to its display color. Unrecognized
// labels fall back to neutral gray; it never fails.
func RatingColor(rating string) string {
	switch rating {
	case "Excellent":
		return ColorAccentStrong
	case "Very Good":
		return ColorAccentMedium
	case "Good":
		return ColorWarning
	case "Poor":
		return ColorDanger
	default:
		return ColorNeutralGray
	}
}

// Aggregate returns a new slice sorted most recent first by raw creation
// timestamp, ties broken by id descending so repeated calls over the
// same rows always order identically. The input is not mutated.
func Aggregate(reports []NormalizedReport) []NormalizedReport {
	sorted := make([]NormalizedReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}

// RelativeAge formats how long ago t was relative to now, for list rows.
func RelativeAge(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
