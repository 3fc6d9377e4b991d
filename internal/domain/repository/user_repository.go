package repository

import (
	"context"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// FindByUsernameOrEmail returns a user matching either value, for the
	// combined uniqueness check at registration.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
}
