package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "venue-map-server"

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService validates the signing secret and returns a token service.
// A missing or short secret is a configuration error, fatal at startup.
func NewTokenService(secret string, expiry time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	return &TokenService{secret: []byte(secret), expiry: expiry}, nil
}

// TokenClaims is the verified identity carried by a token.
type TokenClaims struct {
	Subject  string
	IssuedAt time.Time
}

// Issue creates a signed token embedding the subject id and issue time.
func (ts *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
		Issuer:    tokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expired tokens are distinguished from malformed or tampered ones.
func (ts *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		Subject:  claims.Subject,
		IssuedAt: claims.IssuedAt.Time,
	}, nil
}
