package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"readquest_backend/internals/configs"
	"readquest_backend/internals/constants"
	userModel "readquest_backend/internals/features/users/users/model"
)

// SeedAdminUser creates the bootstrap admin account when the users table
// has no admin yet. Credentials come from ADMIN_USERNAME/ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Admin account already present, skipping seed")
		return nil
	}

	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserName:     "Administrator",
		UserUsername: username,
		UserPassword: string(hashed),
		UserRole:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin account %q seeded", username)
	return nil
}
