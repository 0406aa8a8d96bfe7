package postgresql

import (
	"context"

	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// TxManager lets services run a function inside a store transaction without
// depending on pgx directly. The callback receives a context that routes
// repository calls through the open transaction.
type TxManager struct {
	db *database.DB
}

func NewTxManager(db *database.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, m.db, func(tx pgx.Tx) error {
		return fn(TxContext(ctx, tx))
	})
}

// Serializable runs fn in a SERIALIZABLE transaction.
func (m *TxManager) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithSerializableTransaction(ctx, m.db, func(tx pgx.Tx) error {
		return fn(TxContext(ctx, tx))
	})
}
