package Reports

import (
	"testing"
	"time"
)

func TestAggregateSortsMostRecentFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	input := []NormalizedReport{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
	}

	got := Aggregate(input)
	wantOrder := []uint{2, 3, 1}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got id %d, want %d", i, got[i].ID, id)
		}
	}

	// Input order must be untouched.
	if input[0].ID != 1 || input[2].ID != 3 {
		t.Errorf("Aggregate mutated its input: %+v", input)
	}
}

func TestAggregateTiesBreakByIDDescending(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	input := []NormalizedReport{
		{ID: 3, CreatedAt: ts},
		{ID: 5, CreatedAt: ts},
	}

	got := Aggregate(input)
	if got[0].ID != 5 || got[1].ID != 3 {
		t.Errorf("tie order = [%d %d], want [5 3]", got[0].ID, got[1].ID)
	}
}

func TestRatingColorTotality(t *testing.T) {
	known := map[string]string{
		"Excellent": ColorAccentStrong,
		"Very Good": ColorAccentMedium,
		"Good":      ColorWarning,
		"Poor":      ColorDanger,
	}
	seen := map[string]bool{}
	for rating, want := range known {
		got := RatingColor(rating)
		if got != want {
			t.Errorf("RatingColor(%q) = %q, want %q", rating, got, want)
		}
		if seen[got] {
			t.Errorf("color %q reused for %q", got, rating)
		}
		seen[got] = true
	}

	for _, unknown := range []string{"Unknown", "excellent", "FAIR", ""} {
		if got := RatingColor(unknown); got != ColorNeutralGray {
			t.Errorf("RatingColor(%q) = %q, want neutral gray", unknown, got)
		}
	}
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-48 * time.Hour), "2d ago"},
		{now.Add(-90 * 24 * time.Hour), "Dec 11, 2023"},
	}
	for _, tc := range cases {
		if got := RelativeAge(tc.t, now); got != tc.want {
			t.Errorf("RelativeAge(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}
