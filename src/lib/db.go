package lib

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open abre una base de datos SQLite con traducción de errores activada,
// necesaria para distinguir violaciones de índices únicos.
func Open(dbPath string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
	})
}

// ConnectDB initializes the SQLite connection and sets the global DB variable
func ConnectDB(dbPath string) {
	if dbPath == "" {
		dbPath = "./emprendeuni.db"
	}

	var err error
	DB, err = Open(dbPath)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	log.Println("Connected to SQLite!")
}
