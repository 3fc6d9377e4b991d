package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func newPokedexUsecase(entries *fakePokedexRepo, catalog *fakeCatalog) *PokedexUsecase {
	return NewPokedexUsecase(zap.NewNop(), entries, catalog)
}

func TestAddSnapshotsCatalogData(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.add(pikachu())
	uc := newPokedexUsecase(&fakePokedexRepo{}, catalog)

	entry, err := uc.Add(context.Background(), 1, 25, strPtr("Sparky"), true)
	require.NoError(t, err)
	assert.Equal(t, 25, entry.PokemonID)
	assert.Equal(t, "pikachu", entry.PokemonName)
	assert.Equal(t, "https://example.test/sprites/25.png", entry.PokemonSprite)
	assert.True(t, entry.IsCaptured)
	require.NotNil(t, entry.CaptureDate, "capturing on add stamps the date")
	require.NotNil(t, entry.Nickname)
	assert.Equal(t, "Sparky", *entry.Nickname)
}

func TestAddUncapturedHasNoDate(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.add(pikachu())
	uc := newPokedexUsecase(&fakePokedexRepo{}, catalog)

	entry, err := uc.Add(context.Background(), 1, 25, nil, false)
	require.NoError(t, err)
	assert.False(t, entry.IsCaptured)
	assert.Nil(t, entry.CaptureDate)
}

func TestAddUnknownPokemon(t *testing.T) {
	entries := &fakePokedexRepo{}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	_, err := uc.Add(context.Background(), 1, 99999, nil, false)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
	assert.Empty(t, entries.entries, "a failed catalog lookup must not create an entry")
}

func TestAddSamePokemonTwice(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.add(pikachu())
	entries := &fakePokedexRepo{}
	uc := newPokedexUsecase(entries, catalog)

	first, err := uc.Add(context.Background(), 1, 25, nil, false)
	require.NoError(t, err)

	// There is no per-owner uniqueness: the same pokemon can appear twice.
	second, err := uc.Add(context.Background(), 1, 25, nil, true)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, entries.entries, 2)
}

func TestAddSamePokemonDifferentOwners(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.add(pikachu())
	uc := newPokedexUsecase(&fakePokedexRepo{}, catalog)

	_, err := uc.Add(context.Background(), 1, 25, nil, false)
	require.NoError(t, err)
	_, err = uc.Add(context.Background(), 2, 25, nil, false)
	require.NoError(t, err)
}

func TestListScopedToOwner(t *testing.T) {
	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 1, PokemonID: 25, PokemonName: "pikachu"},
		{ID: 2, OwnerID: 2, PokemonID: 4, PokemonName: "charmander"},
	}, nextID: 2}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	got, err := uc.List(context.Background(), 1, model.PokedexFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 25, got[0].PokemonID)
}

func TestUpdateCaptureStampsDate(t *testing.T) {
	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 1, PokemonID: 25, PokemonName: "pikachu"},
	}, nextID: 1}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	updated, err := uc.Update(context.Background(), 1, 1, model.PokedexEntryUpdate{IsCaptured: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsCaptured)
	require.NotNil(t, updated.CaptureDate)

	// Releasing clears the date again.
	updated, err = uc.Update(context.Background(), 1, 1, model.PokedexEntryUpdate{IsCaptured: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsCaptured)
	assert.Nil(t, updated.CaptureDate)
}

func TestUpdatePartial(t *testing.T) {
	captureDate := datePtr(2026, time.March, 1)
	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 1, PokemonID: 25, PokemonName: "pikachu", IsCaptured: true, CaptureDate: captureDate},
	}, nextID: 1}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	updated, err := uc.Update(context.Background(), 1, 1, model.PokedexEntryUpdate{Favorite: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Favorite)
	assert.True(t, updated.IsCaptured, "omitted fields keep their value")
	assert.Equal(t, captureDate, updated.CaptureDate)
}

func TestUpdateOwnership(t *testing.T) {
	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 2, PokemonID: 25, PokemonName: "pikachu"},
	}, nextID: 1}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	_, notFound := uc.Update(context.Background(), 1, 99, model.PokedexEntryUpdate{})
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(notFound))

	_, forbidden := uc.Update(context.Background(), 1, 1, model.PokedexEntryUpdate{})
	assert.Equal(t, apperrors.ErrUnauthorized, apperrors.CodeOf(forbidden))
}

func TestDelete(t *testing.T) {
	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 1, PokemonID: 25, PokemonName: "pikachu"},
	}, nextID: 1}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	require.NoError(t, uc.Delete(context.Background(), 1, 1))
	assert.Empty(t, entries.entries)

	err := uc.Delete(context.Background(), 1, 1)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestStatsEmpty(t *testing.T) {
	uc := newPokedexUsecase(&fakePokedexRepo{}, newFakeCatalog())

	stats, err := uc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalPokemon)
	assert.Equal(t, float64(0), stats.CompletionPct)
	assert.Nil(t, stats.MostCommonType)
	assert.Equal(t, 0, stats.CaptureStreakDays)
}

func TestStatsCounts(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.add(pikachu())
	catalog.add(charmander())

	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 1, PokemonID: 25, IsCaptured: true, Favorite: true, CaptureDate: datePtr(2026, time.March, 2)},
		{ID: 2, OwnerID: 1, PokemonID: 4, IsCaptured: true, CaptureDate: datePtr(2026, time.March, 3)},
		{ID: 3, OwnerID: 1, PokemonID: 150},
	}, nextID: 3}
	uc := newPokedexUsecase(entries, catalog)

	stats, err := uc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPokemon)
	assert.Equal(t, 2, stats.Captured)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 66.7, stats.CompletionPct, "rounded to one decimal")
	// Pokemon 150 is unknown to the catalog: skipped, not fatal.
	require.NotNil(t, stats.MostCommonType)
	assert.Contains(t, []string{"electric", "fire"}, *stats.MostCommonType)
	assert.Equal(t, 2, stats.CaptureStreakDays)
}

func TestCaptureStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []*time.Time
		want  int
	}{
		{"no captures", nil, 0},
		{"single day", []*time.Time{datePtr(2026, time.March, 1)}, 1},
		{"consecutive days", []*time.Time{
			datePtr(2026, time.March, 1), datePtr(2026, time.March, 2), datePtr(2026, time.March, 3),
		}, 3},
		{"gap resets", []*time.Time{
			datePtr(2026, time.March, 1), datePtr(2026, time.March, 5), datePtr(2026, time.March, 6),
		}, 2},
		{"longest run wins over latest", []*time.Time{
			datePtr(2026, time.March, 1), datePtr(2026, time.March, 2), datePtr(2026, time.March, 3),
			datePtr(2026, time.March, 10),
		}, 3},
		{"same day counted once", []*time.Time{
			datePtr(2026, time.March, 1), datePtr(2026, time.March, 1),
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []*model.PokedexEntry
			for i, d := range tt.dates {
				entries = append(entries, &model.PokedexEntry{
					ID: int64(i + 1), OwnerID: 1, PokemonID: i + 1,
					IsCaptured: true, CaptureDate: d,
				})
			}
			assert.Equal(t, tt.want, captureStreak(entries))
		})
	}
}

func TestExportFilters(t *testing.T) {
	entries := &fakePokedexRepo{entries: []*model.PokedexEntry{
		{ID: 1, OwnerID: 1, PokemonID: 25, IsCaptured: true},
		{ID: 2, OwnerID: 1, PokemonID: 4},
		{ID: 3, OwnerID: 2, PokemonID: 7, IsCaptured: true},
	}, nextID: 3}
	uc := newPokedexUsecase(entries, newFakeCatalog())

	got, err := uc.Export(context.Background(), 1, boolPtr(true), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 25, got[0].PokemonID)
}
