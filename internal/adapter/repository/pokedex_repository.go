package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sortColumns whitelists sortable entry columns.
var sortColumns = map[string]string{
	"pokemon_id":   "pokemon_id",
	"pokemon_name": "pokemon_name",
	"capture_date": "capture_date",
}

type pokedexRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPokedexRepository creates a new pokedex entry repository
func NewPokedexRepository(db *gorm.DB, logger *zap.Logger) repository.PokedexRepository {
	return &pokedexRepository{
		db:     db,
		logger: logger,
	}
}

func (r *pokedexRepository) Create(ctx context.Context, entry *model.PokedexEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.Error("Failed to create pokedex entry",
			zap.Int64("owner_id", entry.OwnerID),
			zap.Int("pokemon_id", entry.PokemonID),
			zap.Error(err))
		return fmt.Errorf("failed to create pokedex entry: %w", err)
	}
	return nil
}

func (r *pokedexRepository) FindByID(ctx context.Context, id int64) (*model.PokedexEntry, error) {
	var entry model.PokedexEntry

	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find pokedex entry", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find pokedex entry: %w", err)
	}

	return &entry, nil
}

func (r *pokedexRepository) ListByOwner(ctx context.Context, ownerID int64, filter model.PokedexFilter) ([]*model.PokedexEntry, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.Captured != nil {
		query = query.Where("is_captured = ?", *filter.Captured)
	}
	if filter.Favorite != nil {
		query = query.Where("favorite = ?", *filter.Favorite)
	}

	column, ok := sortColumns[filter.Sort]
	if !ok {
		column = "pokemon_id"
	}
	direction := "ASC"
	if filter.Order == "desc" {
		direction = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", column, direction))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var entries []*model.PokedexEntry
	if err := query.Find(&entries).Error; err != nil {
		r.logger.Error("Failed to list pokedex entries",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list pokedex entries: %w", err)
	}

	return entries, nil
}

func (r *pokedexRepository) OwnedPokemonIDs(ctx context.Context, ownerID int64) ([]int, error) {
	var ids []int

	err := r.db.WithContext(ctx).
		Model(&model.PokedexEntry{}).
		Where("owner_id = ?", ownerID).
		Distinct().
		Pluck("pokemon_id", &ids).Error
	if err != nil {
		r.logger.Error("Failed to load owned pokemon ids",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load owned pokemon ids: %w", err)
	}

	return ids, nil
}

func (r *pokedexRepository) FindByPokemonIDs(ctx context.Context, ownerID int64, ids []int) ([]*model.PokedexEntry, error) {
	var entries []*model.PokedexEntry

	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND pokemon_id IN ?", ownerID, ids).
		Find(&entries).Error
	if err != nil {
		r.logger.Error("Failed to find entries by pokemon ids",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find entries: %w", err)
	}

	return entries, nil
}

func (r *pokedexRepository) Update(ctx context.Context, entry *model.PokedexEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		r.logger.Error("Failed to update pokedex entry", zap.Int64("id", entry.ID), zap.Error(err))
		return fmt.Errorf("failed to update pokedex entry: %w", err)
	}
	return nil
}

func (r *pokedexRepository) Delete(ctx context.Context, entry *model.PokedexEntry) error {
	if err := r.db.WithContext(ctx).Delete(entry).Error; err != nil {
		r.logger.Error("Failed to delete pokedex entry", zap.Int64("id", entry.ID), zap.Error(err))
		return fmt.Errorf("failed to delete pokedex entry: %w", err)
	}
	return nil
}
