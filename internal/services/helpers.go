package services

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// requireUsuario carrega o usuário ou falha com NOT_FOUND
func requireUsuario(ctx context.Context, repo repositories.UsuarioRepository, id int64) (*entities.Usuario, error) {
	usuario, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUsuarioNotFound
	}
	return usuario, nil
}

// requireCategoria carrega a categoria (ativa ou não) ou falha com NOT_FOUND
func requireCategoria(ctx context.Context, repo repositories.CategoriaRepository, id int64) (*entities.Categoria, error) {
	categoria, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, errors.ErrCategoriaNotFound
	}
	return categoria, nil
}

// checkEditavel aplica as regras comuns antes de alterar uma entidade:
// itens padrão nunca são editáveis e só o dono pode alterar
func checkEditavel(item entities.Owned, padrao bool, usuarioID int64) error {
	if padrao {
		return errors.ErrPadraoNaoEditavel
	}
	if !entities.IsOwnedBy(item, usuarioID) {
		return errors.ErrAcessoNegado
	}
	return nil
}

// checkConteudoJSON garante que conteudoJson é um documento JSON válido
func checkConteudoJSON(conteudo string) error {
	if !json.Valid([]byte(conteudo)) {
		return errors.ErrConteudoJSONInvalid
	}
	return nil
}

// truncateRunes corta s em max caracteres sem quebrar UTF-8
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
