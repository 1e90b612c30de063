package Models

import (
	"log"
	"os"

	"github.com/360EntSecGroup-Skylar/excelize"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("SPARKLE_DB")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Premise{},
		&CleaningService{},
		&FCMToken{},
	)

	// 2. Tables with simple foreign keys
	DB.AutoMigrate(
		&Booking{},          // Depends on User, Premise
		&InspectionReport{}, // Depends on Premise
	)

	// 3. Tables that hang off the above
	DB.AutoMigrate(
		&AreaRating{}, // Depends on InspectionReport
		&Feedback{},   // Depends on User, optionally Booking
	)
}

// SetupPremises seeds the premises table from Premises.xlsx.
// Expected columns: name, address, contact name, contact phone.
func SetupPremises() {
	f, err := excelize.OpenFile("Premises.xlsx")
	if err != nil {
		log.Println(err)
		return
	}

	var premises []Premise
	rows := f.GetRows("Sheet1")
	for _, row := range rows {
		var premise Premise
		for columnIndex, data := range row {
			if columnIndex == 0 {
				premise.Name = data
			}
			if columnIndex == 1 {
				premise.Address = data
			}
			if columnIndex == 2 {
				premise.ContactName = data
			}
			if columnIndex == 3 {
				premise.ContactPhone = data
			}
		}
		if premise.Name == "" {
			continue
		}
		premises = append(premises, premise)
	}

	if len(premises) == 0 {
		return
	}
	if err := DB.Create(&premises).Error; err != nil {
		log.Println(err)
	}
}
