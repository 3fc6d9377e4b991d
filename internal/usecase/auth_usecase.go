package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/auth"
	"github.com/rubencm33/Practica-PokedexApi/internal/domain/model"
	"github.com/rubencm33/Practica-PokedexApi/internal/domain/repository"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// TokenPair bundles the tokens returned by a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

// AuthUsecase implements registration, login, refresh and per-request
// authentication. Identity is re-derived from the bearer token every request;
// there is no server-side session.
type AuthUsecase struct {
	logger   *zap.Logger
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthUsecase creates the auth usecase.
func NewAuthUsecase(logger *zap.Logger, userRepo repository.UserRepository, tokens *auth.TokenService) *AuthUsecase {
	return &AuthUsecase{
		logger:   logger,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register validates the new account and persists it. Username and email
// collisions are reported with one combined message, regardless of which
// field collided.
func (uc *AuthUsecase) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if !auth.ValidEmail(email) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid email", nil)
	}

	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "username or email already exists", nil)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the lookup and hit the
		// unique index; translate instead of leaking the storage error.
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "username or email already exists", err)
	}

	uc.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return user, nil
}

// Login checks the credentials and issues an access and refresh token. The
// failure message never reveals whether the username or the password was
// wrong.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "invalid credentials", nil)
	}

	accessToken, err := uc.tokens.IssueAccessToken(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := uc.tokens.IssueRefreshToken(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh verifies a refresh token and issues a new access token. The old
// access token is irrelevant; only the refresh token and the user's continued
// existence matter.
func (uc *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "user not found", nil)
	}

	accessToken, err := uc.tokens.IssueAccessToken(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// Authenticate resolves a bearer token to its user, for every protected
// route. A valid token whose user no longer exists is unauthorized.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "invalid credentials", nil)
	}

	return user, nil
}
