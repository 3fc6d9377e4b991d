package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/infrastructure/pokeapi"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// In-memory repository fakes. They implement just enough semantics for the
// usecases under test; query shaping beyond ownership and the basic filters
// is covered by the gorm repository tests.

type fakeUserRepo struct {
	users  []*model.User
	nextID int64
	// createErr, when set, is returned by Create after the uniqueness check,
	// standing in for a unique-index violation under concurrency.
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("UNIQUE constraint failed")
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakePokedexRepo struct {
	entries []*model.PokedexEntry
	nextID  int64
}

func (f *fakePokedexRepo) Create(_ context.Context, entry *model.PokedexEntry) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakePokedexRepo) FindByID(_ context.Context, id int64) (*model.PokedexEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakePokedexRepo) ListByOwner(_ context.Context, ownerID int64, filter model.PokedexFilter) ([]*model.PokedexEntry, error) {
	var out []*model.PokedexEntry
	for _, e := range f.entries {
		if e.OwnerID != ownerID {
			continue
		}
		if filter.Captured != nil && e.IsCaptured != *filter.Captured {
			continue
		}
		if filter.Favorite != nil && e.Favorite != *filter.Favorite {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PokemonID < out[j].PokemonID })
	return out, nil
}

func (f *fakePokedexRepo) OwnedPokemonIDs(_ context.Context, ownerID int64) ([]int, error) {
	var ids []int
	for _, e := range f.entries {
		if e.OwnerID == ownerID {
			ids = append(ids, e.PokemonID)
		}
	}
	return ids, nil
}

func (f *fakePokedexRepo) FindByPokemonIDs(_ context.Context, ownerID int64, ids []int) ([]*model.PokedexEntry, error) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*model.PokedexEntry
	for _, e := range f.entries {
		if e.OwnerID == ownerID && want[e.PokemonID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePokedexRepo) Update(_ context.Context, entry *model.PokedexEntry) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
			return nil
		}
	}
	return fmt.Errorf("entry %d not found", entry.ID)
}

func (f *fakePokedexRepo) Delete(_ context.Context, entry *model.PokedexEntry) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entry %d not found", entry.ID)
}

type fakeTeamRepo struct {
	teams   []*model.Team
	members map[int64][]int
	nextID  int64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{members: make(map[int64][]int)}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *model.Team, memberIDs []int) error {
	f.nextID++
	team.ID = f.nextID
	f.teams = append(f.teams, team)
	f.members[team.ID] = append([]int(nil), memberIDs...)
	return nil
}

func (f *fakeTeamRepo) FindByID(_ context.Context, id int64) (*model.Team, error) {
	for _, t := range f.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) ListByOwner(_ context.Context, ownerID int64) ([]*model.Team, error) {
	var out []*model.Team
	for _, t := range f.teams {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) MemberIDs(_ context.Context, teamID int64) ([]int, error) {
	return append([]int(nil), f.members[teamID]...), nil
}

func (f *fakeTeamRepo) Update(_ context.Context, team *model.Team, memberIDs []int) error {
	for i, t := range f.teams {
		if t.ID == team.ID {
			f.teams[i] = team
			if memberIDs != nil {
				f.members[team.ID] = append([]int(nil), memberIDs...)
			}
			return nil
		}
	}
	return fmt.Errorf("team %d not found", team.ID)
}

func (f *fakeTeamRepo) Delete(_ context.Context, team *model.Team) error {
	for i, t := range f.teams {
		if t.ID == team.ID {
			f.teams = append(f.teams[:i], f.teams[i+1:]...)
			delete(f.members, team.ID)
			return nil
		}
	}
	return fmt.Errorf("team %d not found", team.ID)
}

type fakeCatalog struct {
	pokemons map[string]*pokeapi.Pokemon
	species  map[string]*pokeapi.Species
	search   *pokeapi.SearchResult
	calls    int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		pokemons: make(map[string]*pokeapi.Pokemon),
		species:  make(map[string]*pokeapi.Species),
	}
}

func (f *fakeCatalog) add(p *pokeapi.Pokemon) {
	f.pokemons[strconv.Itoa(p.ID)] = p
	f.pokemons[p.Name] = p
}

func (f *fakeCatalog) GetPokemon(_ context.Context, idOrName string) (*pokeapi.Pokemon, error) {
	f.calls++
	if p, ok := f.pokemons[idOrName]; ok {
		return p, nil
	}
	return nil, apperrors.NewAppError(apperrors.ErrNotFound, "pokemon not found", nil)
}

func (f *fakeCatalog) GetSpecies(_ context.Context, idOrName string) (*pokeapi.Species, error) {
	if s, ok := f.species[idOrName]; ok {
		return s, nil
	}
	return nil, apperrors.NewAppError(apperrors.ErrNotFound, "pokemon species not found", nil)
}

func (f *fakeCatalog) Search(_ context.Context, limit, offset int) (*pokeapi.SearchResult, error) {
	if f.search == nil {
		return nil, apperrors.NewAppError(apperrors.ErrUpstream, "pokemon catalog unavailable", nil)
	}
	return f.search, nil
}

func pikachu() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:      25,
		Name:    "pikachu",
		Sprites: pokeapi.Sprites{FrontDefault: "https://example.test/sprites/25.png"},
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "electric"}},
		},
		Stats: []pokeapi.StatValue{
			{BaseStat: 35, Stat: pokeapi.NamedResource{Name: "hp"}},
		},
	}
}

func charmander() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:      4,
		Name:    "charmander",
		Sprites: pokeapi.Sprites{FrontDefault: "https://example.test/sprites/4.png"},
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "fire"}},
		},
	}
}
