package Models

import "testing"

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		booking := Booking{Status: tc.from}
		err := booking.TransitionTo(tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s should be allowed, got %v", tc.from, tc.to, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
		if tc.ok && booking.Status != tc.to {
			t.Errorf("status not applied, still %s", booking.Status)
		}
		if !tc.ok && booking.Status != tc.from {
			t.Errorf("failed transition mutated status to %s", booking.Status)
		}
	}
}

func TestBookingTransitionRejectsUnknownStatus(t *testing.T) {
	booking := Booking{Status: BookingStatusPending}
	if err := booking.TransitionTo("archived"); err == nil {
		t.Error("unknown status accepted")
	}
}
