package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 0)

	token, err := svc.IssueAccessToken("ash", 7)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ash", claims.Username)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 0)

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.IssueAccessToken("ash", 7)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrUnauthenticated, apperrors.CodeOf(err))
}

func TestVerifyZeroTTLTokenFails(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 0)

	issued := time.Now().Add(-time.Second)
	svc.now = func() time.Time { return issued }
	token, err := svc.issue("ash", 7, 0)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.Equal(t, apperrors.ErrUnauthenticated, apperrors.CodeOf(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, 0)
	verifier := NewTokenService("secret-b", time.Hour, 0)

	token, err := issuer.IssueAccessToken("ash", 7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Equal(t, apperrors.ErrUnauthenticated, apperrors.CodeOf(err))
}

func TestVerifyMissingSubject(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 0)

	now := time.Now()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Equal(t, apperrors.ErrUnauthenticated, apperrors.CodeOf(err))
}

func TestRefreshTokenVerifiesLikeAccessToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 48*time.Hour)

	token, err := svc.IssueRefreshToken("ash", 7)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ash", claims.Username)
}
