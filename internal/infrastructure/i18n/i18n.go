// Package i18n carrega os catálogos de mensagens (um JSON por idioma) e
// traduz chaves com interpolação no formato text/template.
package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// message é uma tradução já compilada. tmpl é nil quando o texto não tem ações.
type message struct {
	text string
	tmpl *template.Template
}

// Service guarda os catálogos carregados. É imutável após a criação
// e pode ser compartilhado entre goroutines.
type Service struct {
	catalogs        map[string]map[string]message
	defaultLanguage string
	languages       []string
}

// NewService lê os arquivos <idioma>.json de um diretório do disco
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService usa os catálogos embutidos no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewServiceFS(embeddedLocales, "locales", defaultLang)
}

// NewServiceFS carrega os arquivos <idioma>.json de dir dentro de fsys.
// Templates inválidos falham aqui, não na hora de traduzir.
func NewServiceFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	s := &Service{
		catalogs:        make(map[string]map[string]message, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		catalog, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = catalog
		s.languages = append(s.languages, lang)
	}
	slices.Sort(s.languages)

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (map[string]message, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	catalog := make(map[string]message, len(raw))
	for key, text := range raw {
		msg := message{text: text}
		if strings.Contains(text, "{{") {
			tmpl, err := template.New(key).Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid template for %s in %s: %w", key, file, err)
			}
			msg.tmpl = tmpl
		}
		catalog[key] = msg
	}
	return catalog, nil
}

// T traduz key para lang. A busca segue lang, o idioma base de lang
// ("pt" para "pt-PT") e por fim o idioma padrão. Sem tradução, devolve a própria chave.
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	msg, ok := s.lookup(lang, key)
	if !ok {
		return key
	}
	if msg.tmpl == nil || len(params) == 0 {
		return msg.text
	}

	var buf bytes.Buffer
	if err := msg.tmpl.Execute(&buf, params[0]); err != nil {
		return msg.text
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) (message, bool) {
	for _, candidate := range s.fallbacks(lang) {
		if msg, ok := s.catalogs[candidate][key]; ok {
			return msg, true
		}
	}
	return message{}, false
}

func (s *Service) fallbacks(lang string) []string {
	chain := []string{lang}
	if base, _, found := strings.Cut(lang, "-"); found {
		chain = append(chain, base)
	}
	return append(chain, s.defaultLanguage)
}

// MissingKeys lista, em ordem, as chaves do idioma padrão sem tradução em lang
func (s *Service) MissingKeys(lang string) []string {
	catalog := s.catalogs[lang]

	var missing []string
	for key := range s.catalogs[s.defaultLanguage] {
		if _, ok := catalog[key]; !ok {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	return missing
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	return slices.Clone(s.languages)
}

// IsLanguageSupported verifica se existe um catálogo para lang
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}
