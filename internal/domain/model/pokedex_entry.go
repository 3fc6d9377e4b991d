package model

import "time"

// PokedexEntry is a user's record of one catalog Pokémon. Name and sprite are
// snapshotted from the catalog when the entry is created, not joined live.
type PokedexEntry struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID       int64      `gorm:"not null;index" json:"owner_id"`
	PokemonID     int        `gorm:"not null;index" json:"pokemon_id"`
	PokemonName   string     `gorm:"size:100;not null" json:"pokemon_name"`
	PokemonSprite string     `gorm:"size:255" json:"pokemon_sprite"`
	IsCaptured    bool       `gorm:"default:false" json:"is_captured"`
	CaptureDate   *time.Time `json:"capture_date,omitempty"`
	Nickname      *string    `gorm:"size:50" json:"nickname,omitempty"`
	Favorite      bool       `gorm:"default:false" json:"favorite"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName specifies the table name for GORM
func (PokedexEntry) TableName() string {
	return "pokedex_entries"
}

// PokedexEntryUpdate carries the mutable fields of an entry. Nil pointers mean
// the field was not provided and must not be changed.
type PokedexEntryUpdate struct {
	IsCaptured  *bool      `json:"is_captured,omitempty"`
	CaptureDate *time.Time `json:"capture_date,omitempty"`
	Nickname    *string    `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Favorite    *bool      `json:"favorite,omitempty"`
}

// PokedexFilter narrows and orders entry listings.
type PokedexFilter struct {
	Captured *bool
	Favorite *bool
	Sort     string
	Order    string
	Limit    int
	Offset   int
}
