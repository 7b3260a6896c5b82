package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/middleware"
	"github.com/projetovox/vox-backend/internal/infrastructure/i18n"
)

// DefaultLanguage vale para requisições que não passaram pelo middleware de idioma
const DefaultLanguage = "pt-BR"

// T traduz key no idioma da requisição.
// Ex.: dto.T(c, "error.categoria_duplicada", map[string]interface{}{"Nome": "Casa"})
// Fora da cadeia de middlewares devolve a própria chave.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	if service := translator(c); service != nil {
		return service.T(GetLanguage(c), key, params...)
	}
	return key
}

// GetLanguage retorna o idioma escolhido pelo middleware
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return DefaultLanguage
}

func translator(c *gin.Context) *i18n.Service {
	v, ok := c.Get(middleware.TranslatorContextKey)
	if !ok {
		return nil
	}
	service, _ := v.(*i18n.Service)
	return service
}
