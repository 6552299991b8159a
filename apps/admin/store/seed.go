package store

import (
	"log"

	"toolmart-admin/apps/admin/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin 首次启动时播种超级管理员，已存在则跳过
func SeedSuperAdmin(db *gorm.DB, username, password string) error {
	var existing model.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:  username,
		Email:     username + "@toolmart.local",
		Password:  string(hashed),
		FirstName: "System",
		LastName:  "Admin",
		Role:      model.RoleSuperAdmin,
		IsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded super admin user %q", username)
	return nil
}
