package model

import "time"

// Team is a named grouping of up to six Pokémon from the owner's Pokédex.
// Members reference catalog pokemon ids, not entry rows.
type Team struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID     int64     `gorm:"not null;index" json:"owner_id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description *string   `gorm:"size:255" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName specifies the table name for GORM
func (Team) TableName() string {
	return "teams"
}

// TeamPokemon is a team membership row.
type TeamPokemon struct {
	TeamID    int64 `gorm:"primaryKey" json:"team_id"`
	PokemonID int   `gorm:"primaryKey" json:"pokemon_id"`
}

// TableName specifies the table name for GORM
func (TeamPokemon) TableName() string {
	return "team_pokemon"
}

// MaxTeamSize is the membership limit for a team.
const MaxTeamSize = 6
