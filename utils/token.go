package utils

import (
	"errors"
	"time"

	"crewcall-shop/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of a session token. Guest tokens carry
// only a session id; authenticated tokens also bind a client id.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	ClientID  string `json:"client_id,omitempty"`
	Email     string `json:"email,omitempty"`
	IsGuest   bool   `json:"is_guest"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateSessionToken issues a signed token with a fresh session id.
func GenerateSessionToken(clientID, email string, isGuest bool) (string, *SessionClaims, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: uuid.NewString(),
		ClientID:  clientID,
		Email:     email,
		IsGuest:   isGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AppConfig.JWTExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
