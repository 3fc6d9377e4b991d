package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/domain/repository"
	"github.com/rubencm33/Practica-PokedexApi/internal/infrastructure/pokeapi"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// Catalog is the slice of the PokeAPI client the usecases need.
type Catalog interface {
	GetPokemon(ctx context.Context, idOrName string) (*pokeapi.Pokemon, error)
	GetSpecies(ctx context.Context, idOrName string) (*pokeapi.Species, error)
	Search(ctx context.Context, limit, offset int) (*pokeapi.SearchResult, error)
}

// PokedexStats is the aggregate view of one user's Pokédex.
type PokedexStats struct {
	TotalPokemon      int     `json:"total_pokemon"`
	Captured          int     `json:"captured"`
	Favorites         int     `json:"favorites"`
	CompletionPct     float64 `json:"completion_percentage"`
	MostCommonType    *string `json:"most_common_type"`
	CaptureStreakDays int     `json:"capture_streak_days"`
}

// PokedexUsecase implements the per-user Pokédex operations. Every operation
// is scoped to the owner; entries of other users behave as if they did not
// exist, except that mutating someone else's entry is reported as forbidden
// rather than missing.
type PokedexUsecase struct {
	logger  *zap.Logger
	entries repository.PokedexRepository
	catalog Catalog
}

// NewPokedexUsecase creates the Pokédex usecase.
func NewPokedexUsecase(logger *zap.Logger, entries repository.PokedexRepository, catalog Catalog) *PokedexUsecase {
	return &PokedexUsecase{
		logger:  logger,
		entries: entries,
		catalog: catalog,
	}
}

// Add registers a catalog Pokémon in the owner's Pokédex, snapshotting its
// name and sprite. The same Pokémon may be registered more than once; a
// catalog failure aborts the add with the catalog's own error.
func (uc *PokedexUsecase) Add(ctx context.Context, ownerID int64, pokemonID int, nickname *string, isCaptured bool) (*model.PokedexEntry, error) {
	pokemon, err := uc.catalog.GetPokemon(ctx, strconv.Itoa(pokemonID))
	if err != nil {
		return nil, err
	}

	entry := &model.PokedexEntry{
		OwnerID:       ownerID,
		PokemonID:     pokemon.ID,
		PokemonName:   pokemon.Name,
		PokemonSprite: pokemon.Sprites.FrontDefault,
		IsCaptured:    isCaptured,
		Nickname:      nickname,
	}
	if isCaptured {
		now := time.Now().UTC()
		entry.CaptureDate = &now
	}

	if err := uc.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	uc.logger.Info("Pokedex entry added",
		zap.Int64("owner_id", ownerID),
		zap.Int("pokemon_id", entry.PokemonID))

	return entry, nil
}

// List returns the owner's entries, filtered and ordered per the filter.
func (uc *PokedexUsecase) List(ctx context.Context, ownerID int64, filter model.PokedexFilter) ([]*model.PokedexEntry, error) {
	entries, err := uc.entries.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// Get returns one of the owner's entries by id.
func (uc *PokedexUsecase) Get(ctx context.Context, ownerID, entryID int64) (*model.PokedexEntry, error) {
	return uc.ownedEntry(ctx, ownerID, entryID)
}

// Update applies the provided fields to one of the owner's entries. Marking
// an entry captured stamps the capture date unless the caller supplied one;
// marking it uncaptured clears the date.
func (uc *PokedexUsecase) Update(ctx context.Context, ownerID, entryID int64, update model.PokedexEntryUpdate) (*model.PokedexEntry, error) {
	entry, err := uc.ownedEntry(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}

	if update.IsCaptured != nil {
		entry.IsCaptured = *update.IsCaptured
		switch {
		case !entry.IsCaptured:
			entry.CaptureDate = nil
		case update.CaptureDate != nil:
			entry.CaptureDate = update.CaptureDate
		case entry.CaptureDate == nil:
			now := time.Now().UTC()
			entry.CaptureDate = &now
		}
	} else if update.CaptureDate != nil {
		entry.CaptureDate = update.CaptureDate
	}

	if update.Nickname != nil {
		entry.Nickname = update.Nickname
	}
	if update.Favorite != nil {
		entry.Favorite = *update.Favorite
	}

	if err := uc.entries.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return entry, nil
}

// Delete removes one of the owner's entries.
func (uc *PokedexUsecase) Delete(ctx context.Context, ownerID, entryID int64) error {
	entry, err := uc.ownedEntry(ctx, ownerID, entryID)
	if err != nil {
		return err
	}

	if err := uc.entries.Delete(ctx, entry); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	uc.logger.Info("Pokedex entry deleted",
		zap.Int64("owner_id", ownerID),
		zap.Int64("entry_id", entryID))

	return nil
}

// Export returns the owner's entries for CSV export, honoring the captured
// and favorite filters, ordered by pokemon id.
func (uc *PokedexUsecase) Export(ctx context.Context, ownerID int64, captured, favorite *bool) ([]*model.PokedexEntry, error) {
	filter := model.PokedexFilter{
		Captured: captured,
		Favorite: favorite,
		Sort:     "pokemon_id",
		Order:    "asc",
	}
	entries, err := uc.entries.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for export: %w", err)
	}
	return entries, nil
}

// Stats computes the owner's aggregate numbers. The most common type needs
// one catalog call per distinct Pokémon; entries whose lookup fails are
// skipped rather than failing the whole computation.
func (uc *PokedexUsecase) Stats(ctx context.Context, ownerID int64) (*PokedexStats, error) {
	entries, err := uc.entries.ListByOwner(ctx, ownerID, model.PokedexFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	stats := &PokedexStats{TotalPokemon: len(entries)}
	for _, entry := range entries {
		if entry.IsCaptured {
			stats.Captured++
		}
		if entry.Favorite {
			stats.Favorites++
		}
	}
	if stats.TotalPokemon > 0 {
		pct := float64(stats.Captured) / float64(stats.TotalPokemon) * 100
		stats.CompletionPct = math.Round(pct*10) / 10
	}

	stats.MostCommonType = uc.mostCommonType(ctx, entries)
	stats.CaptureStreakDays = captureStreak(entries)

	return stats, nil
}

func (uc *PokedexUsecase) mostCommonType(ctx context.Context, entries []*model.PokedexEntry) *string {
	counts := make(map[string]int)
	for _, entry := range entries {
		pokemon, err := uc.catalog.GetPokemon(ctx, strconv.Itoa(entry.PokemonID))
		if err != nil {
			uc.logger.Warn("Skipping entry in type stats",
				zap.Int("pokemon_id", entry.PokemonID),
				zap.Error(err))
			continue
		}
		if t := pokemon.PrimaryType(); t != "" {
			counts[t]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	best := ""
	for t, n := range counts {
		if best == "" || n > counts[best] {
			best = t
		}
	}
	return &best
}

// captureStreak is the longest run of consecutive calendar days with at
// least one capture. Duplicate dates do not advance the streak; a single
// capture day is a streak of one.
func captureStreak(entries []*model.PokedexEntry) int {
	seen := make(map[time.Time]bool)
	for _, entry := range entries {
		if entry.IsCaptured && entry.CaptureDate != nil {
			d := entry.CaptureDate.UTC().Truncate(24 * time.Hour)
			seen[d] = true
		}
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

func (uc *PokedexUsecase) ownedEntry(ctx context.Context, ownerID, entryID int64) (*model.PokedexEntry, error) {
	entry, err := uc.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}
	if entry == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "pokedex entry not found", nil)
	}
	if entry.OwnerID != ownerID {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "pokedex entry belongs to another user", nil)
	}
	return entry, nil
}
