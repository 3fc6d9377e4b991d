package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/middleware"
	"github.com/rubencm33/Practica-PokedexApi/internal/usecase"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthHandler struct {
	logger *zap.Logger
	auth   *usecase.AuthUsecase
}

func NewAuthHandler(logger *zap.Logger, auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   auth,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "user registered successfully",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	pair, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

// Refresh accepts the refresh token either as a "token" query parameter or
// in the JSON body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		var req RefreshRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		token = req.RefreshToken
	}

	pair, err := h.auth.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperrors.NewAppError(apperrors.ErrUnauthenticated, "missing authentication", nil)
	}
	return c.JSON(http.StatusOK, user)
}

// bind decodes and validates a JSON request body.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, err.Error(), err)
	}
	return nil
}
