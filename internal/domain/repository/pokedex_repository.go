package repository

import (
	"context"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
)

type PokedexRepository interface {
	Create(ctx context.Context, entry *model.PokedexEntry) error
	FindByID(ctx context.Context, id int64) (*model.PokedexEntry, error)
	// ListByOwner returns only the owner's entries, filtered, sorted and
	// paginated per the filter.
	ListByOwner(ctx context.Context, ownerID int64, filter model.PokedexFilter) ([]*model.PokedexEntry, error)
	// OwnedPokemonIDs returns the distinct catalog pokemon ids present in the
	// owner's Pokédex.
	OwnedPokemonIDs(ctx context.Context, ownerID int64) ([]int, error)
	// FindByPokemonIDs returns the owner's entries whose pokemon_id is in ids.
	FindByPokemonIDs(ctx context.Context, ownerID int64, ids []int) ([]*model.PokedexEntry, error)
	Update(ctx context.Context, entry *model.PokedexEntry) error
	Delete(ctx context.Context, entry *model.PokedexEntry) error
}
