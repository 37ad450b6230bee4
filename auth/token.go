package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const tokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

//TokenIssuer signs and verifies bearer tokens with an injected
// symmetric key. Tokens carry the account id as subject and expire
// one hour after issuance.
type TokenIssuer struct {
	key []byte
}

func NewTokenIssuer(key []byte) *TokenIssuer {
	return &TokenIssuer{key: key}
}

func (t *TokenIssuer) Issue(id ID) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   string(id),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}

func (t *TokenIssuer) Parse(tokenString string) (ID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	return ID(claims.Subject), nil
}
