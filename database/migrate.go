package database

import (
	"servis_backend/internal/auth"
	"servis_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the two tables this system persists.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PesananServis{},
	)
}

// seedAccounts are the staff logins provisioned administratively; the API
// has no registration surface.
var seedAccounts = []struct {
	Username string
	Password string
}{
	{Username: "fuad", Password: "1233"},
	{Username: "nugroho", Password: "1233"},
}

// SeedUsers inserts the staff accounts with bcrypt-hashed passwords.
// Idempotent: accounts that already exist are left alone.
func SeedUsers(db *gorm.DB) error {
	for _, account := range seedAccounts {
		var count int64
		if err := db.Model(&models.User{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := auth.HashPassword(account.Password)
		if err != nil {
			return err
		}

		user := &models.User{
			Username:     account.Username,
			PasswordHash: hash,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
	}
	return nil
}
