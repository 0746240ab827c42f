package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
)

// SigningMethod é o único algoritmo aceito
var SigningMethod = jwt.SigningMethodHS256

// JWTVerifier implementa ports.TokenVerifier para tokens HS256 com segredo compartilhado.
// O claim "aud" não é validado.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier cria um verificador para o segredo informado
func NewJWTVerifier(secret string) ports.TokenVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{SigningMethod.Alg()})),
	}
}

// Verify valida assinatura e expiração e extrai sub, email e os claims completos
func (v *JWTVerifier) Verify(token string) (*entities.AuthUser, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrMissingToken
	}

	claims := jwt.MapClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrInvalidToken, err)
	}
	if subject == "" {
		return nil, domainerrors.ErrMissingSubject
	}

	email, _ := claims["email"].(string)

	return &entities.AuthUser{
		ID:     subject,
		Email:  email,
		Claims: claims,
	}, nil
}

// IsAuthError indica erros que devem virar 401
func IsAuthError(err error) bool {
	return errors.Is(err, domainerrors.ErrMissingToken) ||
		errors.Is(err, domainerrors.ErrInvalidToken) ||
		errors.Is(err, domainerrors.ErrMissingSubject)
}
