package dbasync

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/krew-solutions/deferred-go/deferredgo/deferred"
	"github.com/krew-solutions/deferred-go/deferredgo/outcome"
)

// Connection turns an Executor into a DeferredConnection. Each method builds
// a Deferred whose operation talks to the database; nothing touches the wire
// until the Deferred is triggered, and every trigger re-executes the query.
type Connection struct {
	ctx    context.Context
	exec   Executor
	events *QueryEvents
}

func NewConnection(ctx context.Context, exec Executor) *Connection {
	return &Connection{ctx: ctx, exec: exec}
}

func NewConnectionWithEvents(ctx context.Context, exec Executor, events *QueryEvents) *Connection {
	return &Connection{ctx: ctx, exec: exec, events: events}
}

// observe wraps a statement execution in the started/ended notifications,
// timing it for the ended event.
func (c *Connection) observe(query string, args []any, statement func()) {
	started := time.Now()
	c.events.notifyStarted(query, args, c)
	statement()
	c.events.notifyEnded(query, args, c, time.Since(started))
}

func (c *Connection) Exec(query string, args ...any) deferred.Deferred[Result, error] {
	return deferred.New(func(complete func(outcome.Outcome[Result, error])) {
		if isAutoincrementInsertQuery(query) {
			c.insert(query, args, complete)
			return
		}

		var tag pgconn.CommandTag
		var err error
		c.observe(query, args, func() {
			tag, err = c.exec.Exec(c.ctx, query, args...)
		})

		if err != nil {
			complete(outcome.Failure[Result, error](errors.Wrap(err, "exec failed")))
			return
		}
		complete(outcome.Success[Result, error](NewResult(0, tag.RowsAffected())))
	})
}

func (c *Connection) insert(query string, args []any, complete func(outcome.Outcome[Result, error])) {
	var id int64
	var err error
	c.observe(query, args, func() {
		err = c.exec.QueryRow(c.ctx, query, args...).Scan(&id)
	})

	if err != nil {
		complete(outcome.Failure[Result, error](errors.Wrap(err, "insert failed")))
		return
	}
	complete(outcome.Success[Result, error](NewResult(id, 0)))
}

func (c *Connection) Query(query string, args ...any) deferred.Deferred[Rows, error] {
	return deferred.New(func(complete func(outcome.Outcome[Rows, error])) {
		var rows pgx.Rows
		var err error
		c.observe(query, args, func() {
			rows, err = c.exec.Query(c.ctx, query, args...)
		})

		if err != nil {
			complete(outcome.Failure[Rows, error](errors.Wrap(err, "query failed")))
			return
		}
		complete(outcome.Success[Rows, error](&rowsAdapter{rows: rows}))
	})
}

func (c *Connection) QueryRow(query string, args ...any) deferred.Deferred[Row, error] {
	return deferred.New(func(complete func(outcome.Outcome[Row, error])) {
		var row pgx.Row
		c.observe(query, args, func() {
			row = c.exec.QueryRow(c.ctx, query, args...)
		})

		complete(outcome.Success[Row, error](&rowAdapter{row: row}))
	})
}

// isAutoincrementInsertQuery reports whether the statement hands its
// generated id back through a RETURNING clause, in which case Exec scans the
// id instead of reading the command tag.
func isAutoincrementInsertQuery(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(q, "INSERT") && strings.Contains(q, "RETURNING")
}
