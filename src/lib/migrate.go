package lib

import (
	"log"

	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
)

// AutoMigrate runs all database migrations
func AutoMigrate() {
	err := DB.AutoMigrate(
		&models.Profile{},
		&models.ContactRequest{},
		&models.Message{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database migration completed!")
}
