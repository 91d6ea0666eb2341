package seed

import (
	"log"

	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultSettings are the policy scalars the loan lifecycle reads.
var defaultSettings = map[string]string{
	"max_books_per_card":  "5",
	"loan_period_days":    "14",
	"max_renewal_count":   "2",
	"renewal_period_days": "7",
	"late_fee_per_day":    "5000",
	"late_fee_grace_days": "0",
}

func Seed(db *gorm.DB) {
	// Staff
	var staff models.StaffModel
	result := db.Where("username = ?", "admin").First(&staff)
	if result.Error == nil {
		log.Println("Staff 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newStaff := models.StaffModel{
			Username: "admin",
			Password: string(hashedPassword),
			Fullname: "Administrator",
			Role:     "admin",
		}
		if err := db.Create(&newStaff).Error; err != nil {
			log.Printf("Failed to create staff: %v\n", err)
		} else {
			log.Println("Staff 'admin' created")
		}
	}

	// Policy settings
	log.Println("Checking and creating default policy settings...")
	createdCount := 0
	for name, value := range defaultSettings {
		var existing models.SystemSettingModel
		checkResult := db.Where("setting_name = ?", name).First(&existing)
		if checkResult.Error == nil {
			log.Printf("Setting %q already exists, skipping\n", name)
		} else {
			setting := models.SystemSettingModel{
				SettingName:  name,
				SettingValue: value,
			}
			if err := db.Create(&setting).Error; err != nil {
				log.Printf("Failed to create setting %q: %v\n", name, err)
			} else {
				log.Printf("Setting %q created with value %q\n", name, value)
				createdCount++
			}
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new settings\n", createdCount)
	} else {
		log.Println("All settings already exist")
	}
}
