package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
)

// csvHeader is the fixed column set of a Pokédex export.
var csvHeader = []string{"pokemon_id", "pokemon_name", "nickname", "is_captured", "favorite", "capture_date"}

// WriteCSV streams the entries as CSV, header first. A nil nickname or
// capture date becomes an empty cell.
func WriteCSV(w io.Writer, entries []*model.PokedexEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, entry := range entries {
		nickname := ""
		if entry.Nickname != nil {
			nickname = *entry.Nickname
		}
		captureDate := ""
		if entry.CaptureDate != nil {
			captureDate = entry.CaptureDate.UTC().Format("2006-01-02")
		}

		record := []string{
			strconv.Itoa(entry.PokemonID),
			entry.PokemonName,
			nickname,
			strconv.FormatBool(entry.IsCaptured),
			strconv.FormatBool(entry.Favorite),
			captureDate,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
