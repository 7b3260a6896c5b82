package services

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// reordenar atribui a cada id a sua posição na lista, começando em 1.
// Ids inexistentes ou de outro usuário são ignorados sem erro.
// Retorna quantos itens foram atualizados.
func reordenar[T entities.Owned](
	ctx context.Context,
	ids []int64,
	usuarioID int64,
	find func(context.Context, int64) (T, bool, error),
	apply func(context.Context, T, int) error,
) (int, error) {
	updated := 0
	for i, id := range ids {
		item, found, err := find(ctx, id)
		if err != nil {
			return updated, err
		}
		if !found || !entities.IsOwnedBy(item, usuarioID) {
			continue
		}
		if err := apply(ctx, item, i+1); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
