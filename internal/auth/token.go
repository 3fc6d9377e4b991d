package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// Claims is the payload extracted from a verified token.
type Claims struct {
	Username string
	UserID   int64
}

// TokenService issues and verifies HMAC-signed JWTs. Access and refresh
// tokens share the secret and algorithm and carry no type claim, so a refresh
// token verifies like an access token until it expires.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a token service. Zero TTLs fall back to 24h access
// and 7d refresh lifetimes.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL == 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL == 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssueAccessToken signs a token with subject=username and the numeric user id.
func (s *TokenService) IssueAccessToken(username string, userID int64) (string, error) {
	return s.issue(username, userID, s.accessTTL)
}

// IssueRefreshToken signs a longer-lived token with the same claims.
func (s *TokenService) IssueRefreshToken(username string, userID int64) (string, error) {
	return s.issue(username, userID, s.refreshTTL)
}

func (s *TokenService) issue(username string, userID int64, ttl time.Duration) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"sub":     username,
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates the signature and expiry and returns the claims. Any
// failure, including a missing subject, yields an UNAUTHENTICATED error.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "invalid or expired token", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "invalid token claims", nil)
	}

	username, _ := mapClaims["sub"].(string)
	if username == "" {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "token has no subject", nil)
	}

	// JSON numbers decode as float64.
	var userID int64
	if raw, ok := mapClaims["user_id"].(float64); ok {
		userID = int64(raw)
	}

	return &Claims{Username: username, UserID: userID}, nil
}
