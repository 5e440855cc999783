package middleware

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	id "larder/pkg/domain"
)

// JWTResolver resolves principals from HS256 bearer tokens signed by the
// external identity subsystem. The subject claim carries the principal id.
type JWTResolver struct {
	signingKey []byte
}

func NewJWTResolver(signingKey string) *JWTResolver {
	return &JWTResolver{signingKey: []byte(signingKey)}
}

func (r *JWTResolver) ResolvePrincipal(tokenString string) (id.PrincipalID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return r.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return id.PrincipalID{}, fmt.Errorf("parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return id.PrincipalID{}, fmt.Errorf("read subject claim: %w", err)
	}
	return id.ParsePrincipalID(subject)
}
