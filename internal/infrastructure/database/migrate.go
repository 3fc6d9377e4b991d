package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
)

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.PokedexEntry{},
		&model.Team{},
		&model.TeamPokemon{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("Database schema migrated")
	return nil
}
