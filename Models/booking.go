package Models

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	PremiseID uint   `json:"premise_id" gorm:"index;not null"`
	Date      string `json:"date" gorm:"not null"` // YYYY-MM-DD
	TimeSlot  string `json:"time_slot"`
	// IDs of the booked catalogue services, stored as a JSON array.
	ServiceIDs datatypes.JSON `json:"service_ids"`
	Notes      string         `json:"notes" gorm:"type:text"`
	Status     string         `json:"status" gorm:"size:20;default:pending"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Premise Premise `json:"premise,omitempty" gorm:"foreignKey:PremiseID"`
}

// ValidBookingStatus reports whether s is a recognized status value.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks whether a booking may move from its current
// status to target. Completed and cancelled are terminal.
func (b *Booking) CanTransitionTo(target string) bool {
	switch b.Status {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	}
	return false
}

// TransitionTo validates and applies a status change.
func (b *Booking) TransitionTo(target string) error {
	if !ValidBookingStatus(target) {
		return fmt.Errorf("unknown booking status %q", target)
	}
	if !b.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition booking from %s to %s", b.Status, target)
	}
	b.Status = target
	return nil
}

type BookingRequest struct {
	PremiseID  uint   `json:"premise_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot   string `json:"time_slot"`
	ServiceIDs []uint `json:"service_ids" validate:"required,min=1"`
	Notes      string `json:"notes"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
