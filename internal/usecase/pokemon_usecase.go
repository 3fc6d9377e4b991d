package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/export"
)

// PokemonSummary is one row of a catalog search.
type PokemonSummary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonSearch is a paginated catalog listing.
type PokemonSearch struct {
	Count   int              `json:"count"`
	Results []PokemonSummary `json:"results"`
}

// PokemonDetail combines the catalog payload with the species flavor text.
type PokemonDetail struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Sprite      string   `json:"sprite"`
	Types       []string `json:"types"`
	Abilities   []string `json:"abilities"`
	Stats       []Stat   `json:"stats"`
	Description string   `json:"description,omitempty"`
}

// Stat is one named base stat.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PokemonUsecase serves catalog lookups that need no Pokédex state.
type PokemonUsecase struct {
	logger  *zap.Logger
	catalog Catalog
}

// NewPokemonUsecase creates the catalog usecase.
func NewPokemonUsecase(logger *zap.Logger, catalog Catalog) *PokemonUsecase {
	return &PokemonUsecase{logger: logger, catalog: catalog}
}

// Search pages through the catalog's name listing.
func (uc *PokemonUsecase) Search(ctx context.Context, limit, offset int) (*PokemonSearch, error) {
	result, err := uc.catalog.Search(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	out := &PokemonSearch{Count: result.Count, Results: make([]PokemonSummary, 0, len(result.Results))}
	for _, r := range result.Results {
		out.Results = append(out.Results, PokemonSummary{Name: r.Name, URL: r.URL})
	}
	return out, nil
}

// Detail returns one Pokémon's catalog detail. A missing species record only
// drops the description; the rest of the detail still succeeds.
func (uc *PokemonUsecase) Detail(ctx context.Context, idOrName string) (*PokemonDetail, error) {
	pokemon, err := uc.catalog.GetPokemon(ctx, idOrName)
	if err != nil {
		return nil, err
	}

	detail := &PokemonDetail{
		ID:     pokemon.ID,
		Name:   pokemon.Name,
		Sprite: pokemon.Sprites.FrontDefault,
	}
	for _, t := range pokemon.Types {
		detail.Types = append(detail.Types, t.Type.Name)
	}
	for _, a := range pokemon.Abilities {
		detail.Abilities = append(detail.Abilities, a.Ability.Name)
	}
	for _, s := range pokemon.Stats {
		detail.Stats = append(detail.Stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}

	species, err := uc.catalog.GetSpecies(ctx, idOrName)
	if err != nil {
		uc.logger.Warn("Species lookup failed", zap.String("pokemon", idOrName), zap.Error(err))
	} else {
		detail.Description = species.FlavorIn("en")
	}

	return detail, nil
}

// Card renders one Pokémon's catalog detail as a printable PDF card.
func (uc *PokemonUsecase) Card(ctx context.Context, idOrName string) ([]byte, error) {
	pokemon, err := uc.catalog.GetPokemon(ctx, idOrName)
	if err != nil {
		return nil, err
	}

	var flavor string
	species, err := uc.catalog.GetSpecies(ctx, idOrName)
	if err != nil {
		uc.logger.Warn("Species lookup failed for card", zap.String("pokemon", idOrName), zap.Error(err))
	} else {
		flavor = species.FlavorIn("en")
	}

	return export.CardPDF(pokemon, flavor)
}
