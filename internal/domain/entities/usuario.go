package entities

import (
	"time"

	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/valueobjects"
)

// Usuario representa um usuário do sistema. O email é a chave de login.
type Usuario struct {
	ID           int64
	Nome         string
	Telefone     string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate valida regras de negócio da entidade Usuario
func (u *Usuario) Validate() error {
	fields := map[string]domainerrors.FieldError{}
	if u.Email.String() == "" {
		fields["email"] = domainerrors.FieldError{Key: "validation.required"}
	}
	if u.Nome == "" {
		fields["nome"] = domainerrors.FieldError{Key: "validation.required"}
	}
	if !u.Role.IsValid() {
		fields["role"] = domainerrors.FieldError{Key: "validation.invalid"}
	}

	if len(fields) > 0 {
		return domainerrors.InvalidFields(fields)
	}
	return nil
}
