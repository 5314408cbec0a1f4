package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
)

// InitDB opens the configured database and runs migrations.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// Seed fills in the restaurant profile, a starter menu and an admin
// account when the database is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		restaurant := models.Restaurant{
			Name:        "Spice Garden",
			Description: "Authentic Indian cuisine",
			Address:     "42 MG Road, Bengaluru",
			Phone:       "+91-80-4000-1234",
			Email:       "hello@spicegarden.example",
		}
		if err := db.Create(&restaurant).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		items := []models.MenuItem{
			{Name: "Paneer Butter Masala", ShortDescription: "Cottage cheese in tomato gravy", Price: 280, IsAvailable: true, Category: "Main Course"},
			{Name: "Butter Naan", ShortDescription: "Tandoor-baked flatbread", Price: 60, IsAvailable: true, Category: "Breads"},
			{Name: "Dal Tadka", ShortDescription: "Yellow lentils tempered with ghee", Price: 220, IsAvailable: true, Category: "Main Course"},
			{Name: "Masala Dosa", ShortDescription: "Crisp crepe with potato filling", Price: 150, IsAvailable: true, Category: "South Indian"},
			{Name: "Gulab Jamun", ShortDescription: "Milk dumplings in rose syrup", Price: 120, IsAvailable: true, Category: "Desserts"},
		}
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:     "Admin",
			Phone:    getEnv("ADMIN_PHONE", "+91-90000-00000"),
			Password: string(hashed),
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
