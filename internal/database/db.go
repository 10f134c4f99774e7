package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"shopperwise/internal/models"
)

// Open initializes the database connection and migrates the schema.
func Open(driver, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Recipe{},
		&models.InventoryItem{},
		&models.MealPlan{},
		&models.ShoppingList{},
	).Error; err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
