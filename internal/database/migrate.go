package database

import (
	"fmt"

	"travel_backend/internal/logger"
	"travel_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table, index and constraint.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("Database schema migrated", "tables", len(models.All()))
	return nil
}
