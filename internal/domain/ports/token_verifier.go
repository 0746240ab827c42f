package ports

import "github.com/rafabene/dealflow-backend/internal/domain/entities"

// TokenVerifier valida um bearer token e extrai a identidade do chamador
type TokenVerifier interface {
	Verify(token string) (*entities.AuthUser, error)
}
