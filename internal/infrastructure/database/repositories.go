package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/rubencm33/Practica-PokedexApi/internal/adapter/repository"
	"github.com/rubencm33/Practica-PokedexApi/internal/domain/repository"
)

// Repositories bundles the persistence layer behind one constructor.
type Repositories struct {
	Users   repository.UserRepository
	Pokedex repository.PokedexRepository
	Teams   repository.TeamRepository
}

// NewRepositories wires every repository to the shared connection.
func NewRepositories(db *gorm.DB, log *zap.Logger) *Repositories {
	return &Repositories{
		Users:   adapterrepo.NewUserRepository(db, log),
		Pokedex: adapterrepo.NewPokedexRepository(db, log),
		Teams:   adapterrepo.NewTeamRepository(db, log),
	}
}
