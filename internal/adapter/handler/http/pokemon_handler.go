package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/usecase"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// defaultSearchLimit caps catalog listings when the client asks for nothing
// specific.
const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type PokemonHandler struct {
	logger   *zap.Logger
	pokemons *usecase.PokemonUsecase
}

func NewPokemonHandler(logger *zap.Logger, pokemons *usecase.PokemonUsecase) *PokemonHandler {
	return &PokemonHandler{
		logger:   logger,
		pokemons: pokemons,
	}
}

// Search pages through the catalog name listing.
func (h *PokemonHandler) Search(c echo.Context) error {
	limit, err := queryInt(c, "limit", defaultSearchLimit)
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("limit must be at most %d", maxSearchLimit), nil)
	}

	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	result, err := h.pokemons.Search(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Detail returns one catalog Pokémon with its flavor text.
func (h *PokemonHandler) Detail(c echo.Context) error {
	idOrName := c.Param("pokemon")
	if idOrName == "" {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "missing pokemon parameter", nil)
	}

	detail, err := h.pokemons.Detail(c.Request().Context(), idOrName)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

// Card streams a printable card for one catalog Pokémon.
func (h *PokemonHandler) Card(c echo.Context) error {
	idOrName := c.Param("pokemon")
	if idOrName == "" {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "missing pokemon parameter", nil)
	}

	data, err := h.pokemons.Card(c.Request().Context(), idOrName)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_card.pdf"`, idOrName))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
