package dto

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
)

// BaseURLContextKey guarda a base dos URIs de tipo de problema
const BaseURLContextKey = "base_url"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs) com os campos
// extras que o frontend lê: timestamp, error, message, path e errors.
type ErrorResponse struct {
	problems.Problem
	Timestamp time.Time         `json:"timestamp"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// StatusFor mapeia o Kind do erro para o status HTTP
func StatusFor(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindBusinessRule, domainerrors.KindValidation:
		return http.StatusBadRequest
	case domainerrors.KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func titleKeyFor(kind domainerrors.Kind) string {
	switch kind {
	case domainerrors.KindNotFound:
		return "error.not_found.title"
	case domainerrors.KindBusinessRule:
		return "error.business_rule.title"
	case domainerrors.KindValidation:
		return "error.validation.title"
	case domainerrors.KindUnauthorized:
		return "error.unauthorized.title"
	default:
		return "error.internal.title"
	}
}

// NewErrorResponse monta o documento de problema traduzido para um erro de domínio
func NewErrorResponse(c *gin.Context, de *domainerrors.DomainError) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	status := StatusFor(de.Kind)
	title := T(c, titleKeyFor(de.Kind))

	var detail string
	if de.Params != nil {
		detail = T(c, de.Key, de.Params)
	} else {
		detail = T(c, de.Key)
	}

	return ErrorResponse{
		Problem: problems.Problem{
			Type:     baseURL + domainerrors.ProblemTypeFor(de.Kind),
			Title:    title,
			Status:   status,
			Detail:   detail,
			Instance: c.Request.URL.Path,
		},
		Timestamp: time.Now().UTC(),
		Error:     string(de.Kind),
		Message:   detail,
		Path:      c.Request.URL.Path,
		Errors:    fieldMessages(c, de),
	}
}

// fieldMessages junta as mensagens prontas com as chaves do domínio traduzidas
func fieldMessages(c *gin.Context, de *domainerrors.DomainError) map[string]string {
	if len(de.FieldKeys) == 0 {
		return de.Fields
	}
	out := make(map[string]string, len(de.Fields)+len(de.FieldKeys))
	for field, msg := range de.Fields {
		out[field] = msg
	}
	for field, fe := range de.FieldKeys {
		if fe.Params != nil {
			out[field] = T(c, fe.Key, fe.Params)
		} else {
			out[field] = T(c, fe.Key)
		}
	}
	return out
}

// WriteError traduz qualquer erro para a resposta de problema e aborta a requisição.
// Erros que não são de domínio viram UNEXPECTED (500) e ficam em c.Errors para o log.
func WriteError(c *gin.Context, err error) {
	de := toDomainError(c, err)
	if de.Kind == domainerrors.KindUnexpected {
		_ = c.Error(err)
	}

	response := NewErrorResponse(c, de)
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

func toDomainError(c *gin.Context, err error) *domainerrors.DomainError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return domainerrors.Validation(fieldErrors(c, ve))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domainerrors.Validation(map[string]string{field: T(c, "validation.invalid")})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return domainerrors.Validation(map[string]string{"body": T(c, "validation.json")})
	}

	var de *domainerrors.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domainerrors.Unexpected(err)
}

func fieldErrors(c *gin.Context, ve validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		key := "validation." + fe.Tag()
		message := T(c, key, map[string]interface{}{"Param": fe.Param()})
		if message == key {
			message = T(c, "validation.invalid")
		}
		fields[jsonFieldName(fe)] = message
	}
	return fields
}

// jsonFieldName usa o nome registrado pelo RegisterTagNameFunc (tag json),
// caindo para o nome Go em minúsculas na primeira letra
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "body"
	}
	if name == fe.StructField() {
		return strings.ToLower(name[:1]) + name[1:]
	}
	return name
}

var registerOnce sync.Once

// RegisterJSONFieldNames faz o validator do gin reportar campos pelo nome JSON
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
