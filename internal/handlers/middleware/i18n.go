package middleware

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/infrastructure/i18n"
)

// Chaves do idioma e do tradutor no contexto do gin
const (
	LanguageContextKey   = "language"
	TranslatorContextKey = "translator"
)

// Language escolhe o idioma da requisição: ?lang=, depois Accept-Language
// respeitando os pesos q, depois o padrão do serviço.
// O idioma escolhido volta no header Content-Language.
func Language(svc *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := resolveLanguage(svc, c.Query("lang"))
		if lang == "" {
			lang = negotiate(svc, c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = svc.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(TranslatorContextKey, svc)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

type weightedTag struct {
	tag string
	q   float64
}

// negotiate percorre as tags por peso decrescente. Empates mantêm a ordem do header
// e q=0 exclui a tag.
func negotiate(svc *i18n.Service, header string) string {
	var tags []weightedTag
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if q := quality(params); q > 0 {
			tags = append(tags, weightedTag{tag: tag, q: q})
		}
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.q, a.q)
	})

	for _, t := range tags {
		if lang := resolveLanguage(svc, t.tag); lang != "" {
			return lang
		}
	}
	return ""
}

func quality(params string) float64 {
	for _, p := range strings.Split(params, ";") {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return q
	}
	return 1
}

// resolveLanguage tenta a tag exata, a base sem região (en-US -> en)
// e por fim a primeira variante regional da mesma base (pt -> pt-BR).
func resolveLanguage(svc *i18n.Service, tag string) string {
	if tag == "" || tag == "*" {
		return ""
	}
	if svc.IsLanguageSupported(tag) {
		return tag
	}

	base, _, _ := strings.Cut(tag, "-")
	if svc.IsLanguageSupported(base) {
		return base
	}
	for _, supported := range svc.GetSupportedLanguages() {
		if b, _, _ := strings.Cut(supported, "-"); strings.EqualFold(b, base) {
			return supported
		}
	}
	return ""
}
