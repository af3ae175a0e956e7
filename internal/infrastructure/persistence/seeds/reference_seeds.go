package seeds

import (
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
)

// SeedReferenceData seeds the organization and platform lookup tables with
// the defaults the dashboard ships with.
func SeedReferenceData(db *gorm.DB) error {
	organizations := []models.OrganizationModel{
		{Name: "Acme Corp"},
		{Name: "Globex"},
		{Name: "Initech"},
	}

	for _, org := range organizations {
		if err := db.FirstOrCreate(&org, models.OrganizationModel{
			Name: org.Name,
		}).Error; err != nil {
			return err
		}
	}

	platforms := []models.PlatformModel{
		{Name: "Web"},
		{Name: "iOS"},
		{Name: "Android"},
		{Name: "Desktop"},
	}

	for _, platform := range platforms {
		if err := db.FirstOrCreate(&platform, models.PlatformModel{
			Name: platform.Name,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
