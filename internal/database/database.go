package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"snipboard/backend/internal/models"
)

// Connect opens the database connection, configures the gorm logger, and
// runs migrations. The handle is returned for injection rather than stored
// in a package global.
func Connect(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("database: failed to connect: %w", err)
	}

	log.Println("Database connection established.")

	// Run migrations. The tags table intentionally has no uniqueness
	// constraint on title — see store.TagStore.GetOrCreate.
	err = db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Snippet{})
	if err != nil {
		return nil, fmt.Errorf("database: failed to migrate: %w", err)
	}

	log.Println("Database migrated successfully.")
	return db, nil
}
