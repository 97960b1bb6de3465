package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const tokenIssuer = "accounts-api"

// Identity is the set of user claims embedded in an issued token.
type Identity struct {
	UserID  string
	Email   string
	Name    string
	Surname string
}

// Claims represents the JWT claims carried by an auth token.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// Identity returns the identity claims embedded in the token.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:  c.UserID,
		Email:   c.Email,
		Name:    c.Name,
		Surname: c.Surname,
	}
}

// GenerateToken creates a signed HS256 token embedding the given identity.
// An expiry of zero issues a token without an expiration claim; rotating
// the secret invalidates every previously issued token.
func GenerateToken(id Identity, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   tokenIssuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:  id.UserID,
		Email:   id.Email,
		Name:    id.Name,
		Surname: id.Surname,
	}
	if expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a token string, returning the claims if
// the signature checks out. Any tampering with the embedded claims, a wrong
// secret, or an expired token yields ErrInvalidToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
