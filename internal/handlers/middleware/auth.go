package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
)

// AuthUserContextKey guarda o *entities.AuthUser da requisição
const AuthUserContextKey = "auth_user"

// Auth exige "Authorization: Bearer <token>" e anexa o usuário ao contexto.
// unauthorized escreve a resposta de erro; o middleware apenas aborta a cadeia.
func Auth(verifier ports.TokenVerifier, unauthorized func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, domainerrors.ErrMissingToken)
			c.Abort()
			return
		}

		user, err := verifier.Verify(token)
		if err != nil {
			unauthorized(c, err)
			c.Abort()
			return
		}

		c.Set(AuthUserContextKey, user)
		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado; nil fora de rotas protegidas
func CurrentUser(c *gin.Context) *entities.AuthUser {
	value, exists := c.Get(AuthUserContextKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.AuthUser)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
