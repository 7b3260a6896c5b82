package dto

import (
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// TipoToken é o esquema do token devolvido no login
const TipoToken = "Bearer"

// RegisterRequest aceita a senha em "senha" ou "password"
type RegisterRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=100"`
	Telefone string `json:"telefone" binding:"max=20"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Senha    string `json:"senha" binding:"required_without=Password,max=72"`
	Password string `json:"password" binding:"max=72"`
}

// Secret retorna a senha informada, qualquer que seja o campo usado
func (r RegisterRequest) Secret() string {
	if r.Senha != "" {
		return r.Senha
	}
	return r.Password
}

// LoginRequest aceita "email" ou "username" e "senha" ou "password"
type LoginRequest struct {
	Email    string `json:"email" binding:"required_without=Username"`
	Username string `json:"username"`
	Senha    string `json:"senha" binding:"required_without=Password"`
	Password string `json:"password"`
}

// Login retorna o identificador informado
func (r LoginRequest) Login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// Secret retorna a senha informada
func (r LoginRequest) Secret() string {
	if r.Senha != "" {
		return r.Senha
	}
	return r.Password
}

// RegisterResponse é devolvido com 201 após o registro
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// TokenResponse é devolvido no login
type TokenResponse struct {
	Token string `json:"token"`
	Tipo  string `json:"tipo"`
}

// UsuarioResponse representa a resposta de um usuário. Nunca expõe o hash da senha.
type UsuarioResponse struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Telefone     string    `json:"telefone,omitempty"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CriadoEm     time.Time `json:"criadoEm"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}

// ToUsuarioResponse converte uma entidade Usuario para UsuarioResponse
func ToUsuarioResponse(u *entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:           u.ID,
		Nome:         u.Nome,
		Telefone:     u.Telefone,
		Email:        u.Email.String(),
		Role:         string(u.Role),
		CriadoEm:     u.CriadoEm,
		AtualizadoEm: u.AtualizadoEm,
	}
}

// ToUsuarioResponses converte uma lista de usuários
func ToUsuarioResponses(usuarios []*entities.Usuario) []UsuarioResponse {
	return mapSlice(usuarios, ToUsuarioResponse)
}

// PageResponse é o envelope das listagens paginadas. Pagina começa em 1.
type PageResponse[T any] struct {
	Conteudo       []T   `json:"conteudo"`
	Pagina         int   `json:"pagina"`
	Tamanho        int   `json:"tamanho"`
	TotalElementos int64 `json:"totalElementos"`
	TotalPaginas   int   `json:"totalPaginas"`
}

// NewPageResponse calcula o total de páginas a partir do total de elementos
func NewPageResponse[T any](conteudo []T, pagina, tamanho int, total int64) PageResponse[T] {
	totalPaginas := 0
	if tamanho > 0 {
		totalPaginas = int((total + int64(tamanho) - 1) / int64(tamanho))
	}
	return PageResponse[T]{
		Conteudo:       conteudo,
		Pagina:         pagina,
		Tamanho:        tamanho,
		TotalElementos: total,
		TotalPaginas:   totalPaginas,
	}
}

func mapSlice[E any, R any](items []E, fn func(E) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
