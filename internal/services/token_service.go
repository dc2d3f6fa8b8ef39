package services

import (
	"errors"
	"time"

	"github.com/gaineafrica/farmrecords/internal/types"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies bearer identity tokens. Expiry is the
// only invalidation mechanism; there is no revocation list.
type TokenService struct {
	secretKey []byte
	expiry    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// access token lifetime.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

// Issue produces a signed, time-bounded token with userID as subject.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify returns the embedded user ID if the signature is valid and the
// token has not expired.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", types.NewAuthError("Token has expired", "auth.token.expired")
		}
		return "", types.NewAuthError("Invalid token", "auth.token.invalid")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", types.NewAuthError("Invalid token", "auth.token.invalid")
	}

	return claims.Subject, nil
}
