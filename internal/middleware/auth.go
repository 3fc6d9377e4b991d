package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// userContextKey is where the authenticated user is stored on the request.
const userContextKey = "current_user"

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// JWTAuth extracts the bearer token, resolves it to a user and stores the
// user on the request context. Requests without a valid token never reach
// the handler.
func JWTAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by JWTAuth, or nil on unprotected
// routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", apperrors.NewAppError(apperrors.ErrUnauthenticated, "missing authorization header", nil)
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", apperrors.NewAppError(apperrors.ErrUnauthenticated, "authorization header must use the Bearer scheme", nil)
	}
	return strings.TrimPrefix(header, prefix), nil
}
