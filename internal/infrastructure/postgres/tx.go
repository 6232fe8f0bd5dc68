package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/howietz/placeshare/internal/domain/repository"
)

// TxRunner implements repository.Atomic on top of a Postgres transaction.
// Every write issued through the Stores handed to fn lands in the same
// transaction; fn returning an error rolls the whole unit back.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) Transact(ctx context.Context, fn func(s repository.Stores) error) error {
	err := pgx.BeginFunc(ctx, t.pool, func(tx pgx.Tx) error {
		return fn(repository.Stores{
			Users:  &UserRepository{db: tx},
			Places: &PlaceRepository{db: tx},
		})
	})
	return translateErr(err)
}

var _ repository.Atomic = (*TxRunner)(nil)
