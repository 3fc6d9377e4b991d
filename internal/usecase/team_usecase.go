package usecase

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/domain/repository"
	"github.com/rubencm33/Practica-PokedexApi/internal/export"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// TeamWithMembers is a team plus its member catalog ids, as returned by the
// read operations.
type TeamWithMembers struct {
	*model.Team
	PokemonIDs []int `json:"pokemon_ids"`
}

// TeamUpdate carries the mutable fields of a team. Name and description are
// only applied when non-empty; a nil PokemonIDs slice leaves the membership
// untouched, while an empty one clears it.
type TeamUpdate struct {
	Name        string  `json:"name" validate:"omitempty,min=3,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	PokemonIDs  []int   `json:"pokemon_ids,omitempty" validate:"omitempty,max=6"`
}

// TeamUsecase implements team operations. Teams reference catalog ids that
// must already be present in the owner's Pokédex; membership writes are
// transactional so a team is never observed half-updated.
type TeamUsecase struct {
	logger  *zap.Logger
	teams   repository.TeamRepository
	entries repository.PokedexRepository
	catalog Catalog
}

// NewTeamUsecase creates the team usecase.
func NewTeamUsecase(logger *zap.Logger, teams repository.TeamRepository, entries repository.PokedexRepository, catalog Catalog) *TeamUsecase {
	return &TeamUsecase{
		logger:  logger,
		teams:   teams,
		entries: entries,
		catalog: catalog,
	}
}

// Create builds a team from catalog ids already present in the owner's
// Pokédex. Any id missing from the Pokédex fails the whole request, naming
// the missing ids.
func (uc *TeamUsecase) Create(ctx context.Context, ownerID int64, name string, description *string, pokemonIDs []int) (*TeamWithMembers, error) {
	if err := uc.validateMembers(ctx, ownerID, pokemonIDs); err != nil {
		return nil, err
	}

	team := &model.Team{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}

	if err := uc.teams.Create(ctx, team, pokemonIDs); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	uc.logger.Info("Team created",
		zap.Int64("owner_id", ownerID),
		zap.Int64("team_id", team.ID),
		zap.Int("members", len(pokemonIDs)))

	return &TeamWithMembers{Team: team, PokemonIDs: pokemonIDs}, nil
}

// List returns the owner's teams with their member ids.
func (uc *TeamUsecase) List(ctx context.Context, ownerID int64) ([]*TeamWithMembers, error) {
	teams, err := uc.teams.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	out := make([]*TeamWithMembers, 0, len(teams))
	for _, team := range teams {
		memberIDs, err := uc.teams.MemberIDs(ctx, team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load team members: %w", err)
		}
		out = append(out, &TeamWithMembers{Team: team, PokemonIDs: memberIDs})
	}
	return out, nil
}

// Get returns one of the owner's teams with its member ids.
func (uc *TeamUsecase) Get(ctx context.Context, ownerID, teamID int64) (*TeamWithMembers, error) {
	team, err := uc.ownedTeam(ctx, ownerID, teamID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := uc.teams.MemberIDs(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return &TeamWithMembers{Team: team, PokemonIDs: memberIDs}, nil
}

// Update applies the provided fields. Name and description are only applied
// when non-empty; providing pokemon ids replaces the whole membership in one
// transaction.
func (uc *TeamUsecase) Update(ctx context.Context, ownerID, teamID int64, update TeamUpdate) (*TeamWithMembers, error) {
	team, err := uc.ownedTeam(ctx, ownerID, teamID)
	if err != nil {
		return nil, err
	}

	if update.PokemonIDs != nil {
		if err := uc.validateMembers(ctx, ownerID, update.PokemonIDs); err != nil {
			return nil, err
		}
	}

	if update.Name != "" {
		team.Name = update.Name
	}
	if update.Description != nil && *update.Description != "" {
		team.Description = update.Description
	}

	if err := uc.teams.Update(ctx, team, update.PokemonIDs); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	memberIDs := update.PokemonIDs
	if memberIDs == nil {
		if memberIDs, err = uc.teams.MemberIDs(ctx, team.ID); err != nil {
			return nil, fmt.Errorf("failed to load team members: %w", err)
		}
	}
	return &TeamWithMembers{Team: team, PokemonIDs: memberIDs}, nil
}

// Delete removes one of the owner's teams and its membership rows.
func (uc *TeamUsecase) Delete(ctx context.Context, ownerID, teamID int64) error {
	team, err := uc.ownedTeam(ctx, ownerID, teamID)
	if err != nil {
		return err
	}

	if err := uc.teams.Delete(ctx, team); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	uc.logger.Info("Team deleted",
		zap.Int64("owner_id", ownerID),
		zap.Int64("team_id", teamID))

	return nil
}

// ExportPDF renders one of the owner's teams as a PDF roster. Member detail
// comes from the catalog; a member whose lookup fails is rendered from the
// Pokédex snapshot alone.
func (uc *TeamUsecase) ExportPDF(ctx context.Context, ownerID, teamID int64) ([]byte, error) {
	team, err := uc.ownedTeam(ctx, ownerID, teamID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := uc.teams.MemberIDs(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	entries, err := uc.entries.FindByPokemonIDs(ctx, ownerID, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load member entries: %w", err)
	}
	byPokemonID := make(map[int]*model.PokedexEntry, len(entries))
	for _, entry := range entries {
		byPokemonID[entry.PokemonID] = entry
	}

	members := make([]export.TeamMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		member := export.TeamMember{Entry: byPokemonID[id]}
		pokemon, err := uc.catalog.GetPokemon(ctx, strconv.Itoa(id))
		if err != nil {
			uc.logger.Warn("Skipping catalog detail for team member",
				zap.Int("pokemon_id", id),
				zap.Error(err))
		} else {
			member.Pokemon = pokemon
		}
		members = append(members, member)
	}

	return export.TeamPDF(team, members)
}

func (uc *TeamUsecase) validateMembers(ctx context.Context, ownerID int64, pokemonIDs []int) error {
	if len(pokemonIDs) > model.MaxTeamSize {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("a team can have at most %d pokemon", model.MaxTeamSize), nil)
	}

	owned, err := uc.entries.OwnedPokemonIDs(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load owned pokemon ids: %w", err)
	}
	ownedSet := make(map[int]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}

	var missing []int
	for _, id := range pokemonIDs {
		if !ownedSet[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("the following pokemon are not in your pokedex: %v", missing), nil)
	}
	return nil
}

func (uc *TeamUsecase) ownedTeam(ctx context.Context, ownerID, teamID int64) (*model.Team, error) {
	team, err := uc.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	// A team owned by someone else is indistinguishable from a missing one.
	if team == nil || team.OwnerID != ownerID {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "team not found", nil)
	}
	return team, nil
}
