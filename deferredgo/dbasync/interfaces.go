package dbasync

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/krew-solutions/deferred-go/deferredgo/deferred"
)

type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}

type Rows interface {
	Close() error
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Err() error
	Scan(dest ...any) error
}

// Executor is the pgx execution surface shared by *pgxpool.Conn and pgx.Tx.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// DeferredExecutor executes statements as deferred computations: the query
// is sent to the database only when the returned Deferred is triggered, and
// re-sent on every trigger.
type DeferredExecutor interface {
	Exec(query string, args ...any) deferred.Deferred[Result, error]
}

type DeferredQuerier interface {
	Query(query string, args ...any) deferred.Deferred[Rows, error]
}

type DeferredSingleQuerier interface {
	QueryRow(query string, args ...any) deferred.Deferred[Row, error]
}

type DeferredConnection interface {
	DeferredExecutor
	DeferredQuerier
	DeferredSingleQuerier
}

type ConnectionCallback func(DeferredConnection) error
