package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/infrastructure/pokeapi"
)

func strPtr(s string) *string { return &s }

func TestWriteCSV(t *testing.T) {
	captureDate := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	entries := []*model.PokedexEntry{
		{PokemonID: 25, PokemonName: "pikachu", Nickname: strPtr("Sparky"), IsCaptured: true, Favorite: true, CaptureDate: &captureDate},
		{PokemonID: 150, PokemonName: "mewtwo"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"pokemon_id", "pokemon_name", "nickname", "is_captured", "favorite", "capture_date"}, records[0])
	assert.Equal(t, []string{"25", "pikachu", "Sparky", "true", "true", "2026-03-14"}, records[1])
	assert.Equal(t, []string{"150", "mewtwo", "", "false", "false", ""}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func testPokemon() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:   25,
		Name: "pikachu",
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "electric"}},
		},
		Abilities: []pokeapi.AbilitySlot{
			{Ability: pokeapi.NamedResource{Name: "static"}},
		},
		Stats: []pokeapi.StatValue{
			{BaseStat: 35, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 90, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
	}
}

func TestTeamPDF(t *testing.T) {
	team := &model.Team{ID: 1, Name: "Kanto Starters", Description: strPtr("First picks")}
	members := []TeamMember{
		{
			Entry:   &model.PokedexEntry{PokemonID: 25, PokemonName: "pikachu", Nickname: strPtr("Sparky")},
			Pokemon: testPokemon(),
		},
		// Catalog lookup failed for this member; only the snapshot renders.
		{Entry: &model.PokedexEntry{PokemonID: 150, PokemonName: "mewtwo"}},
	}

	data, err := TeamPDF(team, members)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must be a PDF document")
}

func TestTeamPDFNoMembers(t *testing.T) {
	data, err := TeamPDF(&model.Team{ID: 2, Name: "Empty"}, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCardPDF(t *testing.T) {
	flavor := "When several of\nthese POKeMON\fgather, their electricity could build and cause lightning storms."
	data, err := CardPDF(testPokemon(), flavor)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCleanFlavor(t *testing.T) {
	got := cleanFlavor("line one\nline\ftwo   spaced")
	assert.Equal(t, "line one line two spaced", got)
	assert.False(t, strings.ContainsAny(got, "\n\f"))
}
