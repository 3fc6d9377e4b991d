package pokeapi

// NamedResource is the PokeAPI {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the subset of the PokeAPI pokemon payload the service uses.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []StatValue   `json:"stats"`
}

type Sprites struct {
	FrontDefault string `json:"front_default"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Ability NamedResource `json:"ability"`
}

type StatValue struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// PrimaryType returns the first listed type name, or "" when absent.
func (p *Pokemon) PrimaryType() string {
	if len(p.Types) == 0 {
		return ""
	}
	return p.Types[0].Type.Name
}

// StatByName returns the base value of the named stat, or 0 when absent.
func (p *Pokemon) StatByName(name string) int {
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s.BaseStat
		}
	}
	return 0
}

// Species is the subset of the pokemon-species payload the service uses.
type Species struct {
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// FlavorIn returns the first flavor text in the given language, or "".
func (s *Species) FlavorIn(language string) string {
	for _, entry := range s.FlavorTextEntries {
		if entry.Language.Name == language {
			return entry.FlavorText
		}
	}
	return ""
}

// SearchResult is a paginated pokemon name listing.
type SearchResult struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}
