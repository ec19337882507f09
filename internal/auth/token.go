package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// ErrInvalidToken covers malformed, unsigned, wrongly signed and expired
// tokens alike; callers answer 401 either way.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies HMAC-signed bearer tokens. The claims are
// the user summary plus standard issued-at/expiry; nothing here is secret,
// the signature only prevents forgery.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(user entity.UserSummary) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the embedded user
// summary. The caller still has to confirm the user exists.
func (m *TokenManager) Verify(tokenString string) (entity.UserSummary, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return entity.UserSummary{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserSummary{}, ErrInvalidToken
	}

	summary := entity.UserSummary{
		ID:    stringClaim(claims, "id"),
		Email: stringClaim(claims, "email"),
		Role:  stringClaim(claims, "role"),
	}
	if summary.ID == "" {
		return entity.UserSummary{}, ErrInvalidToken
	}
	return summary, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
