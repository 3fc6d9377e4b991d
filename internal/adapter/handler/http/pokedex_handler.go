package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/export"
	"github.com/rubencm33/Practica-PokedexApi/internal/middleware"
	"github.com/rubencm33/Practica-PokedexApi/internal/usecase"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

type AddEntryRequest struct {
	PokemonID  int     `json:"pokemon_id" validate:"required,min=1"`
	Nickname   *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	IsCaptured bool    `json:"is_captured"`
}

type PokedexHandler struct {
	logger  *zap.Logger
	pokedex *usecase.PokedexUsecase
}

func NewPokedexHandler(logger *zap.Logger, pokedex *usecase.PokedexUsecase) *PokedexHandler {
	return &PokedexHandler{
		logger:  logger,
		pokedex: pokedex,
	}
}

func (h *PokedexHandler) Add(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req AddEntryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	entry, err := h.pokedex.Add(c.Request().Context(), user.ID, req.PokemonID, req.Nickname, req.IsCaptured)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entry)
}

func (h *PokedexHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	filter, err := entryFilter(c)
	if err != nil {
		return err
	}

	entries, err := h.pokedex.List(c.Request().Context(), user.ID, filter)
	if err != nil {
		return err
	}

	if entries == nil {
		entries = []*model.PokedexEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *PokedexHandler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)

	entryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.pokedex.Get(c.Request().Context(), user.ID, entryID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *PokedexHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)

	entryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req model.PokedexEntryUpdate
	if err := bind(c, &req); err != nil {
		return err
	}

	entry, err := h.pokedex.Update(c.Request().Context(), user.ID, entryID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *PokedexHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)

	entryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.pokedex.Delete(c.Request().Context(), user.ID, entryID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PokedexHandler) Stats(c echo.Context) error {
	user := middleware.CurrentUser(c)

	stats, err := h.pokedex.Stats(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// ExportCSV streams the user's Pokédex as a CSV download. CSV is the only
// supported format for now.
func (h *PokedexHandler) ExportCSV(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if format := c.QueryParam("format"); format != "" && format != "csv" {
		return apperrors.NewAppError(apperrors.ErrNotImplemented, "unsupported export format: "+format, nil)
	}

	captured, err := queryBool(c, "captured")
	if err != nil {
		return err
	}
	favorite, err := queryBool(c, "favorite")
	if err != nil {
		return err
	}

	entries, err := h.pokedex.Export(c.Request().Context(), user.ID, captured, favorite)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, entries); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="pokedex.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func entryFilter(c echo.Context) (model.PokedexFilter, error) {
	var filter model.PokedexFilter

	captured, err := queryBool(c, "captured")
	if err != nil {
		return filter, err
	}
	favorite, err := queryBool(c, "favorite")
	if err != nil {
		return filter, err
	}
	filter.Captured = captured
	filter.Favorite = favorite
	filter.Sort = c.QueryParam("sort")
	filter.Order = c.QueryParam("order")

	if filter.Limit, err = queryInt(c, "limit", 0); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil {
		return filter, err
	}
	return filter, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid "+name+" parameter", err)
	}
	return id, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid "+name+" parameter", err)
	}
	return &v, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid "+name+" parameter", err)
	}
	return v, nil
}
