// Package testauth assina tokens HS256 no formato emitido pelo provedor de identidade
package testauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Secret é o segredo usado nos testes de handlers
const Secret = "test-secret"

// Token assina um token válido por uma hora para sub e email
func Token(secret, sub, email string) string {
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"aud":   "authenticated",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	return Sign(secret, claims)
}

// Sign assina claims arbitrários; usado para montar tokens inválidos
func Sign(secret string, claims jwt.MapClaims) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return signed
}
