package database

import (
	"log"

	"github.com/campushire/jobboard-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	return db
}

// Migrate creates/updates the schema. Shared with tests, which run it
// against sqlite.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Company{},
		&models.Category{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
		&models.JobEvent{},
	)
}
