package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/handlers/middleware"
)

// usuarioID lê o header Usuario-Id, obrigatório nas rotas /api
func usuarioID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.GetHeader(middleware.UsuarioIDHeader)), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrUsuarioIDInvalido
	}
	return id, nil
}

// optionalUsuarioID lê o header Usuario-Id quando presente
func optionalUsuarioID(c *gin.Context) (*int64, error) {
	if strings.TrimSpace(c.GetHeader(middleware.UsuarioIDHeader)) == "" {
		return nil, nil
	}
	id, err := usuarioID(c)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// pathID lê um parâmetro numérico da rota
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrIDInvalido.WithParams(map[string]interface{}{"Param": name})
	}
	return id, nil
}

// queryInt lê um inteiro da query com valor padrão e limites inclusivos
func queryInt(c *gin.Context, name string, def, minValue, maxValue int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Validation(map[string]string{name: dto.T(c, "validation.invalid")})
	}
	if value < minValue {
		return 0, errors.Validation(map[string]string{
			name: dto.T(c, "validation.gte", map[string]interface{}{"Param": minValue}),
		})
	}
	if value > maxValue {
		return 0, errors.Validation(map[string]string{
			name: dto.T(c, "validation.lte", map[string]interface{}{"Param": maxValue}),
		})
	}
	return value, nil
}

// requiredQuery lê um parâmetro de texto obrigatório
func requiredQuery(c *gin.Context, name string) (string, error) {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return "", errors.Validation(map[string]string{name: dto.T(c, "validation.required")})
	}
	return value, nil
}

// presentQuery exige que o parâmetro exista, mas aceita valor vazio
func presentQuery(c *gin.Context, name string) (string, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return "", errors.Validation(map[string]string{name: dto.T(c, "validation.required")})
	}
	return value, nil
}

// queryPeriodo lê inicio e fim em RFC 3339
func queryPeriodo(c *gin.Context) (time.Time, time.Time, error) {
	inicio, err := time.Parse(time.RFC3339, c.Query("inicio"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.ErrPeriodoInvalido
	}
	fim, err := time.Parse(time.RFC3339, c.Query("fim"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.ErrPeriodoInvalido
	}
	return inicio, fim, nil
}
