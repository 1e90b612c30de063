package Models

import "gorm.io/gorm"

// Feedback is a client's rating of a completed service.
type Feedback struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	BookingID *uint  `json:"booking_id" gorm:"index"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment" gorm:"type:text"`

	// Relationships
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

type FeedbackRequest struct {
	BookingID *uint  `json:"booking_id"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
