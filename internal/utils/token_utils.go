package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientTokenIssuer is the issuer stamped on tokens handed to editorial clients.
const ClientTokenIssuer = "newswire-macros"

// IssueClientToken signs a token identifying clientID, valid for ttl from now.
func IssueClientToken(clientID, secret string, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(clientID) == "" {
		return "", errors.New("client id is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token lifetime must be positive, got %s", ttl)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    ClientTokenIssuer,
		Subject:   clientID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseClientToken validates the signature and standard claims of tokenString.
// Expiry and not-before failures are reported as jwt.ErrTokenExpired and
// jwt.ErrTokenNotValidYet.
func ParseClientToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
