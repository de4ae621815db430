package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chatbox-lab/domain"
)

// CustomClaims defines the data stored inside a resume token.
type CustomClaims struct {
	UserID domain.UserID `json:"user_id"`
	Roles  []string      `json:"roles"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates resume tokens. The signing key is
// injected from configuration, never compiled in.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
}

func NewTokenIssuer(key []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{key: key, ttl: ttl}
}

// Generate creates a signed token for a specific user. A client holding
// it can re-authenticate a fresh connection without resending credentials.
func (t *TokenIssuer) Generate(userID domain.UserID, roles []string) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "chatbox-lab",
		},
	}

	// HS256: HMAC with SHA256, same as every token in this system
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Validate parses a token string and checks signature and expiration.
func (t *TokenIssuer) Validate(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
