package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/middleware"
	"github.com/rubencm33/Practica-PokedexApi/internal/usecase"
)

type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	PokemonIDs  []int   `json:"pokemon_ids" validate:"max=6"`
}

type TeamHandler struct {
	logger *zap.Logger
	teams  *usecase.TeamUsecase
}

func NewTeamHandler(logger *zap.Logger, teams *usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{
		logger: logger,
		teams:  teams,
	}
}

func (h *TeamHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req CreateTeamRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	team, err := h.teams.Create(c.Request().Context(), user.ID, req.Name, req.Description, req.PokemonIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "team created successfully",
		"team_id":   team.ID,
		"team_name": team.Name,
	})
}

func (h *TeamHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	teams, err := h.teams.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	if teams == nil {
		teams = []*usecase.TeamWithMembers{}
	}
	return c.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)

	teamID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	team, err := h.teams.Get(c.Request().Context(), user.ID, teamID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)

	teamID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.TeamUpdate
	if err := bind(c, &req); err != nil {
		return err
	}

	team, err := h.teams.Update(c.Request().Context(), user.ID, teamID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)

	teamID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.teams.Delete(c.Request().Context(), user.ID, teamID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ExportPDF streams a team roster as a PDF download.
func (h *TeamHandler) ExportPDF(c echo.Context) error {
	user := middleware.CurrentUser(c)

	teamID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	data, err := h.teams.ExportPDF(c.Request().Context(), user.ID, teamID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="team_%d.pdf"`, teamID))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
