// Package token signs and parses the auth tokens issued to clients. The
// payload embeds the user identifier under a nested "user" claim, which is
// the shape the frontend and older clients already expect.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Signer issues HS256 tokens. A zero TTL means no exp claim is set and
// tokens never expire.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token whose payload is {"user": {"id": userID}}.
func (s *Signer) Sign(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"iat":  time.Now().Unix(),
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// UserID verifies the signature (and exp, when present) and returns the
// embedded user identifier.
func (s *Signer) UserID(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	return UserIDFromClaims(claims)
}

// UserIDFromClaims extracts the user identifier from already-verified
// claims, e.g. the token the JWT middleware leaves in the request context.
func UserIDFromClaims(claims jwt.MapClaims) (string, error) {
	user, ok := claims["user"].(map[string]any)
	if !ok {
		return "", ErrInvalidToken
	}
	id, ok := user["id"].(string)
	if !ok || id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}
