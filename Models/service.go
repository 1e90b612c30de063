package Models

import "gorm.io/gorm"

// CleaningService is a catalogue entry clients can book.
type CleaningService struct {
	gorm.Model
	Name            string  `json:"name" gorm:"not null;unique"`
	Description     string  `json:"description" gorm:"type:text"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active" gorm:"default:true"`
}

func (CleaningService) TableName() string {
	return "services"
}

type CleaningServiceRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Active          *bool   `json:"active"`
}
