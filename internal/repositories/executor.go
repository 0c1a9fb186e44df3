package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxGetter resolves the per-request transaction installed by the tx
// middleware. A nil getter or a nil result falls back to the pooled handle.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
