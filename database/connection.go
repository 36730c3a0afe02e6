package database

import (
	"context"
	"log"

	"blogapi/config"
	"blogapi/models"
	"blogapi/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connected successfully")
	return db
}

func Migrate(db *gorm.DB, cfg *config.Config) {
	// The join table is managed explicitly so the sync layer can diff its
	// rows; gorm must be told before AutoMigrate builds the schema.
	if err := db.SetupJoinTable(&models.Post{}, "Categories", &models.PostCategory{}); err != nil {
		log.Fatal("Failed to set up join table:", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Contact{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := services.NewUserService(db).EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	log.Println("Database migrated successfully")
}
