package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/rubencm33/Practica-PokedexApi/internal/adapter/handler/http"
	"github.com/rubencm33/Practica-PokedexApi/internal/auth"
	"github.com/rubencm33/Practica-PokedexApi/internal/config"
	"github.com/rubencm33/Practica-PokedexApi/internal/infrastructure/database"
	"github.com/rubencm33/Practica-PokedexApi/internal/infrastructure/pokeapi"
	"github.com/rubencm33/Practica-PokedexApi/internal/middleware"
	"github.com/rubencm33/Practica-PokedexApi/internal/ratelimit"
	"github.com/rubencm33/Practica-PokedexApi/internal/usecase"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
	"github.com/rubencm33/Practica-PokedexApi/pkg/logger"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	limiters *ratelimit.Registry
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, log *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE},
	}))

	s := &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		repos:    repos,
		limiters: ratelimit.NewRegistry(cfg.RateLimit),
	}
	s.setupRoutes()
	return s
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	tokens := auth.NewTokenService(s.config.JWT.Secret, s.config.JWT.AccessTokenTTL, s.config.JWT.RefreshTokenTTL)
	catalog := pokeapi.NewClient(s.config.PokeAPI, s.logger)

	authUsecase := usecase.NewAuthUsecase(s.logger, s.repos.Users, tokens)
	pokedexUsecase := usecase.NewPokedexUsecase(s.logger, s.repos.Pokedex, catalog)
	teamUsecase := usecase.NewTeamUsecase(s.logger, s.repos.Teams, s.repos.Pokedex, catalog)
	pokemonUsecase := usecase.NewPokemonUsecase(s.logger, catalog)

	authHandler := handlers.NewAuthHandler(s.logger, authUsecase)
	pokedexHandler := handlers.NewPokedexHandler(s.logger, pokedexUsecase)
	teamHandler := handlers.NewTeamHandler(s.logger, teamUsecase)
	pokemonHandler := handlers.NewPokemonHandler(s.logger, pokemonUsecase)

	v1 := s.echo.Group("/api/v1")

	// Public routes, throttled by client address.
	v1.POST("/auth/register", authHandler.Register, middleware.RateLimitByIP(s.limiters.Register))
	v1.POST("/auth/login", authHandler.Login, middleware.RateLimitByIP(s.limiters.Login))
	v1.POST("/auth/refresh", authHandler.Refresh)

	// Everything below requires a bearer token.
	protected := v1.Group("", middleware.JWTAuth(authUsecase))

	protected.GET("/auth/me", authHandler.Me)

	pokedex := protected.Group("/pokedex", middleware.RateLimitByUser(s.limiters.Pokedex))
	pokedex.POST("", pokedexHandler.Add)
	pokedex.GET("", pokedexHandler.List)
	pokedex.GET("/stats", pokedexHandler.Stats)
	pokedex.GET("/export", pokedexHandler.ExportCSV)
	pokedex.GET("/:id", pokedexHandler.Get)
	pokedex.PATCH("/:id", pokedexHandler.Update)
	pokedex.PUT("/:id", pokedexHandler.Update)
	pokedex.DELETE("/:id", pokedexHandler.Delete)

	teams := protected.Group("/teams", middleware.RateLimitByUser(s.limiters.Pokedex))
	teams.POST("", teamHandler.Create)
	teams.GET("", teamHandler.List)
	teams.GET("/:id", teamHandler.Get)
	teams.PUT("/:id", teamHandler.Update)
	teams.PATCH("/:id", teamHandler.Update)
	teams.DELETE("/:id", teamHandler.Delete)
	teams.GET("/:id/export", teamHandler.ExportPDF)

	protected.GET("/pokemon", pokemonHandler.Search, middleware.RateLimitByUser(s.limiters.Search))
	protected.GET("/pokemon/:pokemon", pokemonHandler.Detail, middleware.RateLimitByUser(s.limiters.Detail))
	protected.GET("/pokemon/:pokemon/card", pokemonHandler.Card, middleware.RateLimitByUser(s.limiters.Card))
}

// errorHandler renders every error as {"code", "message"} JSON, mapping
// application codes to their HTTP status.
func errorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		httpErr := apperrors.ToHTTPError(err)

		var appErr *apperrors.AppError
		code := apperrors.FromHTTPStatus(httpErr.Code)
		if apperrors.As(err, &appErr) {
			code = appErr.Code()
		}

		if httpErr.Code >= http.StatusInternalServerError {
			apperrors.LogError(log, err, "Request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()))
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(httpErr.Code); err != nil {
				log.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		writeErr := c.JSON(httpErr.Code, echo.Map{
			"code":    code,
			"message": fmt.Sprintf("%v", httpErr.Message),
		})
		if writeErr != nil {
			log.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}
