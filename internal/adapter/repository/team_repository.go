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

type teamRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, logger *zap.Logger) repository.TeamRepository {
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team, memberIDs []int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return insertMembers(tx, team.ID, memberIDs)
	})
	if err != nil {
		r.logger.Error("Failed to create team",
			zap.Int64("owner_id", team.OwnerID),
			zap.String("name", team.Name),
			zap.Error(err))
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *teamRepository) FindByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team

	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find team", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return &team, nil
}

func (r *teamRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*model.Team, error) {
	var teams []*model.Team

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		r.logger.Error("Failed to list teams", zap.Int64("owner_id", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) MemberIDs(ctx context.Context, teamID int64) ([]int, error) {
	var ids []int

	err := r.db.WithContext(ctx).
		Model(&model.TeamPokemon{}).
		Where("team_id = ?", teamID).
		Pluck("pokemon_id", &ids).Error
	if err != nil {
		r.logger.Error("Failed to load team members", zap.Int64("team_id", teamID), zap.Error(err))
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	return ids, nil
}

// Update saves the team row; a non-nil memberIDs replaces the full membership
// set in the same transaction so a failed insert leaves nothing half-replaced.
func (r *teamRepository) Update(ctx context.Context, team *model.Team, memberIDs []int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(team).Error; err != nil {
			return err
		}
		if memberIDs == nil {
			return nil
		}
		if err := tx.Where("team_id = ?", team.ID).Delete(&model.TeamPokemon{}).Error; err != nil {
			return err
		}
		return insertMembers(tx, team.ID, memberIDs)
	})
	if err != nil {
		r.logger.Error("Failed to update team", zap.Int64("id", team.ID), zap.Error(err))
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&model.TeamPokemon{}).Error; err != nil {
			return err
		}
		return tx.Delete(team).Error
	})
	if err != nil {
		r.logger.Error("Failed to delete team", zap.Int64("id", team.ID), zap.Error(err))
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func insertMembers(tx *gorm.DB, teamID int64, memberIDs []int) error {
	for _, pid := range memberIDs {
		if err := tx.Create(&model.TeamPokemon{TeamID: teamID, PokemonID: pid}).Error; err != nil {
			return err
		}
	}
	return nil
}
