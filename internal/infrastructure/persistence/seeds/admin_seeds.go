package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// SeedDefaultAdmin creates the initial admin account if no account exists for
// the email yet. The password is hashed with the same hasher the login path
// verifies against.
func SeedDefaultAdmin(db *gorm.DB, hasher admin.PasswordHasher, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("admin seed requires email and password")
	}

	var count int64
	if err := db.Model(&models.AdminModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return db.Create(&models.AdminModel{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         authorization.RoleAdmin.String(),
	}).Error
}
