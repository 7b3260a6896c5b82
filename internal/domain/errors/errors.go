package errors

import "errors"

// Kind classifica um erro de domínio. Cada Kind tem um status HTTP fixo na borda.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindBusinessRule Kind = "BUSINESS_RULE_VIOLATION"
	KindValidation   Kind = "VALIDATION_FAILED"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindUnexpected   Kind = "UNEXPECTED"
)

// Recursos não encontrados
// Nota: Key é o message ID usado pelo i18n.
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUsuarioNotFound           = New(KindNotFound, "error.usuario_not_found")
	ErrCategoriaNotFound         = New(KindNotFound, "error.categoria_not_found")
	ErrPictogramaNotFound        = New(KindNotFound, "error.pictograma_not_found")
	ErrFraseNotFound             = New(KindNotFound, "error.frase_not_found")
	ErrMensagemNotFound          = New(KindNotFound, "error.mensagem_not_found")
	ErrPictogramaExternoNotFound = New(KindNotFound, "error.pictograma_externo_not_found")
)

// Regras de negócio
var (
	ErrEmailAlreadyExists    = New(KindBusinessRule, "error.email_already_exists")
	ErrCategoriaDuplicada    = New(KindBusinessRule, "error.categoria_duplicada")
	ErrPictogramaDuplicado   = New(KindBusinessRule, "error.pictograma_duplicado")
	ErrPictogramaJaImportado = New(KindBusinessRule, "error.pictograma_ja_importado")
	ErrFraseDuplicada        = New(KindBusinessRule, "error.frase_duplicada")
	ErrPadraoNaoEditavel     = New(KindBusinessRule, "error.padrao_nao_editavel")
	ErrAcessoNegado          = New(KindBusinessRule, "error.acesso_negado")
)

// Autenticação
var (
	ErrInvalidCredentials = New(KindUnauthorized, "error.invalid_credentials")
	ErrUnauthorized       = New(KindUnauthorized, "error.unauthorized")
)

// Validação de entrada
var (
	ErrInvalidEmail        = New(KindValidation, "error.invalid_email")
	ErrUsuarioIDInvalido   = New(KindValidation, "error.usuario_id_invalido")
	ErrIDInvalido          = New(KindValidation, "error.id_invalido")
	ErrPeriodoInvalido     = New(KindValidation, "error.periodo_invalido")
	ErrConteudoJSONInvalid = New(KindValidation, "error.conteudo_json_invalido")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeBusinessRule = "/problems/business-rule"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind   Kind
	Key    string
	Params map[string]interface{}
	Fields map[string]string // campo -> mensagem, só para VALIDATION_FAILED
	// FieldKeys são erros de campo ainda não traduzidos, vindos do domínio
	FieldKeys map[string]FieldError
	Err       error
}

// FieldError é a chave i18n de um erro de campo e seus parâmetros
type FieldError struct {
	Key    string
	Params map[string]interface{}
}

// New cria um DomainError sem causa
func New(kind Kind, key string) *DomainError {
	return &DomainError{Kind: kind, Key: key}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is compara por Kind e Key, assim errors.Is funciona com cópias parametrizadas.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Key == e.Key
}

// WithParams retorna uma cópia do erro com parâmetros de interpolação
func (e *DomainError) WithParams(params map[string]interface{}) *DomainError {
	cp := *e
	cp.Params = params
	return &cp
}

// Wrap retorna uma cópia do erro com a causa anexada
func (e *DomainError) Wrap(err error) *DomainError {
	cp := *e
	cp.Err = err
	return &cp
}

// Validation cria um erro VALIDATION_FAILED com o mapa campo -> mensagem
func Validation(fields map[string]string) *DomainError {
	return &DomainError{
		Kind:   KindValidation,
		Key:    "error.validation.detail",
		Fields: fields,
	}
}

// InvalidFields cria um VALIDATION_FAILED cujas mensagens são traduzidas na borda HTTP
func InvalidFields(fields map[string]FieldError) *DomainError {
	return &DomainError{
		Kind:      KindValidation,
		Key:       "error.validation.detail",
		FieldKeys: fields,
	}
}

// Unexpected envolve uma falha não tratada
func Unexpected(err error) *DomainError {
	return &DomainError{
		Kind: KindUnexpected,
		Key:  "error.internal.detail",
		Err:  err,
	}
}

// KindOf retorna o Kind de err, ou UNEXPECTED se err não for um DomainError
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}

// ProblemTypeFor retorna o URI relativo do problema para um Kind
func ProblemTypeFor(kind Kind) string {
	switch kind {
	case KindNotFound:
		return ProblemTypeNotFound
	case KindBusinessRule:
		return ProblemTypeBusinessRule
	case KindValidation:
		return ProblemTypeValidation
	case KindUnauthorized:
		return ProblemTypeUnauthorized
	default:
		return ProblemTypeInternal
	}
}
