package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/ports"
)

const (
	// PrincipalContextKey guarda o usuário autenticado pelo token
	PrincipalContextKey = "principal"
	// UsuarioIDHeader identifica o usuário que age nas rotas /api
	UsuarioIDHeader = "Usuario-Id"

	bearerPrefix = "Bearer "
)

// Authenticator resolve o usuário dono de um token
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Usuario, error)
}

// OptionalAuth lê "Authorization: Bearer <token>" e, se o token for válido,
// guarda o usuário no contexto. Nunca bloqueia: sem token ou com token inválido
// a requisição segue sem principal.
func OptionalAuth(auth Authenticator, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		usuario, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("ignoring invalid bearer token", "path", c.Request.URL.Path, "error", err)
			c.Next()
			return
		}

		c.Set(PrincipalContextKey, usuario)
		c.Next()
	}
}

// Principal retorna o usuário autenticado, se houver
func Principal(c *gin.Context) (*entities.Usuario, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return nil, false
	}
	usuario, ok := value.(*entities.Usuario)
	return usuario, ok && usuario != nil
}
