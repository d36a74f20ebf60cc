package auth

import (
	"fmt"
	"time"

	"servis_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens. Secret and TTL come
// from configuration at construction time; nothing global.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager with a TTL given in minutes.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Generate issues a signed token for the user, expiring TTL from now.
func (tm *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse validates signature and expiry and returns the claims.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ExpiresIn reports the configured lifetime in seconds, as the login
// response advertises it.
func (tm *TokenManager) ExpiresIn() int {
	return int(tm.ttl / time.Second)
}
