package repository

import (
	"context"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
)

type TeamRepository interface {
	// Create persists the team and its membership rows in one transaction.
	Create(ctx context.Context, team *model.Team, memberIDs []int) error
	FindByID(ctx context.Context, id int64) (*model.Team, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*model.Team, error)
	MemberIDs(ctx context.Context, teamID int64) ([]int, error)
	// Update saves the team row and, when memberIDs is non-nil, replaces all
	// membership rows (delete then insert) in the same transaction.
	Update(ctx context.Context, team *model.Team, memberIDs []int) error
	// Delete removes the team row and its membership rows in one transaction.
	Delete(ctx context.Context, team *model.Team) error
}
