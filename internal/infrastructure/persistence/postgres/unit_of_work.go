package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/ports"
)

type txContextKey struct{}

// UnitOfWork implementa ports.UnitOfWork sobre db.Transaction do gorm
type UnitOfWork struct {
	db *gorm.DB
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithTransaction abre uma transação, ou reaproveita a que já viaja em ctx.
// Assim um serviço pode chamar outro sem abrir savepoints.
func (u *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

func txFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok
}

// dbFromContext devolve a transação em curso ou db ligado a ctx
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return db.WithContext(ctx)
}
