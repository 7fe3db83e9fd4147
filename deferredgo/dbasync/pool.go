package dbasync

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/krew-solutions/deferred-go/deferredgo/signals"
)

// ConnectionPool scopes DeferredConnections over a pgx pool. All
// connections handed out by one pool share its query signals.
type ConnectionPool struct {
	pool   *pgxpool.Pool
	events *QueryEvents
}

func NewConnectionPool(pool *pgxpool.Pool) *ConnectionPool {
	return &ConnectionPool{
		pool:   pool,
		events: NewQueryEvents(),
	}
}

func (p *ConnectionPool) OnQueryStarted() signals.Signal[QueryStartedEvent] {
	return p.events.OnQueryStarted()
}

func (p *ConnectionPool) OnQueryEnded() signals.Signal[QueryEndedEvent] {
	return p.events.OnQueryEnded()
}

// Connection acquires a connection, runs the callback against it and
// releases it. Deferreds built inside the callback must be triggered inside
// it; the connection is gone once Connection returns.
func (p *ConnectionPool) Connection(ctx context.Context, callback ConnectionCallback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to acquire connection")
	}
	defer conn.Release()

	return callback(NewConnectionWithEvents(ctx, conn, p.events))
}

// Atomic runs the callback inside a transaction. A callback error rolls the
// transaction back and is returned; a rollback failure is appended to it.
func (p *ConnectionPool) Atomic(ctx context.Context, callback ConnectionCallback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to acquire connection")
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to start transaction")
	}

	err = callback(NewConnectionWithEvents(ctx, tx, p.events))
	if err != nil {
		if txErr := tx.Rollback(ctx); txErr != nil {
			return multierror.Append(err, txErr)
		}
		return err
	}

	if txErr := tx.Commit(ctx); txErr != nil {
		return errors.Wrap(txErr, "failed to commit transaction")
	}

	return nil
}
