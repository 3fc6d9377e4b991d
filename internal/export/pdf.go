package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/infrastructure/pokeapi"
)

// TeamMember pairs a member's Pokédex snapshot with its catalog detail.
// Either side may be nil when the backing lookup failed; the renderer uses
// whatever is present.
type TeamMember struct {
	Entry   *model.PokedexEntry
	Pokemon *pokeapi.Pokemon
}

// coreStats is the stat order printed on rosters and cards.
var coreStats = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// TeamPDF renders a team roster: a title block followed by one section per
// member with its types and base stats.
func TeamPDF(team *model.Team, members []TeamMember) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(team.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, team.Name, "", 1, "C", false, 0, "")

	if team.Description != nil && *team.Description != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, *team.Description, "", "C", false)
	}
	pdf.Ln(4)

	if len(members) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, "This team has no members yet.", "", 1, "C", false, 0, "")
	}

	for i, member := range members {
		renderMember(pdf, i+1, member)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render team pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderMember(pdf *fpdf.Fpdf, position int, member TeamMember) {
	name := ""
	pokemonID := 0
	switch {
	case member.Entry != nil:
		name = member.Entry.PokemonName
		pokemonID = member.Entry.PokemonID
	case member.Pokemon != nil:
		name = member.Pokemon.Name
		pokemonID = member.Pokemon.ID
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(235, 235, 235)
	title := fmt.Sprintf("%d. %s  (#%d)", position, titleCase(name), pokemonID)
	if member.Entry != nil && member.Entry.Nickname != nil && *member.Entry.Nickname != "" {
		title += fmt.Sprintf("  \"%s\"", *member.Entry.Nickname)
	}
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if member.Pokemon != nil {
		types := make([]string, 0, len(member.Pokemon.Types))
		for _, t := range member.Pokemon.Types {
			types = append(types, t.Type.Name)
		}
		pdf.CellFormat(0, 6, "Types: "+strings.Join(types, ", "), "", 1, "L", false, 0, "")

		for _, stat := range coreStats {
			pdf.CellFormat(40, 5, statLabel(stat), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 5, fmt.Sprintf("%d", member.Pokemon.StatByName(stat)), "", 1, "L", false, 0, "")
		}
	} else {
		pdf.CellFormat(0, 6, "Catalog details unavailable.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

// CardPDF renders a single Pokémon as a one-page card with its types,
// abilities, stats and flavor text.
func CardPDF(pokemon *pokeapi.Pokemon, flavor string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(pokemon.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s  #%d", titleCase(pokemon.Name), pokemon.ID), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	types := make([]string, 0, len(pokemon.Types))
	for _, t := range pokemon.Types {
		types = append(types, t.Type.Name)
	}
	abilities := make([]string, 0, len(pokemon.Abilities))
	for _, a := range pokemon.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Types: "+strings.Join(types, ", "), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Abilities: "+strings.Join(abilities, ", "), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Base stats", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, stat := range coreStats {
		pdf.CellFormat(50, 6, statLabel(stat), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%d", pokemon.StatByName(stat)), "1", 1, "L", false, 0, "")
	}

	if flavor != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, cleanFlavor(flavor), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render card pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func statLabel(stat string) string {
	words := strings.Split(stat, "-")
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// cleanFlavor strips the control characters PokeAPI flavor texts carry over
// from the game ROMs.
func cleanFlavor(s string) string {
	s = strings.ReplaceAll(s, "\f", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
