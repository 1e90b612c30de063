package Models

import "gorm.io/gorm"

// Premise is a physical site under a cleaning contract.
type Premise struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Address      string `json:"address" gorm:"not null"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	PhotoPath    string `json:"photo_path"`

	// Relationships
	InspectionReports []InspectionReport `json:"inspection_reports,omitempty" gorm:"foreignKey:PremiseID"`
	Bookings          []Booking          `json:"bookings,omitempty" gorm:"foreignKey:PremiseID"`
}

type PremiseRequest struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}
