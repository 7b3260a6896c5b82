package ports

import "context"

// UnitOfWork delimita uma transação. fn recebe um contexto que carrega a transação:
// repositórios chamados com ele participam dela. Erro ou panic em fn desfazem tudo.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
