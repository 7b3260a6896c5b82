package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object normalizado em minúsculas. É a chave de login do Usuario.
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = normalize(email)

	if !isValidEmail(email) {
		return Email{}, domainerrors.ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// EmailFromStorage reconstrói um Email já persistido, sem revalidar o formato
func EmailFromStorage(email string) Email {
	return Email{value: normalize(email)}
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// Equals compara dois emails normalizados
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func normalize(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
