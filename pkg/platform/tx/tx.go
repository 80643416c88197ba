// Package tx runs store work inside one SQL transaction carried by the
// context, so that nested store calls join the outermost transaction.
package tx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type key struct{}

// Conn is the statement surface shared by *sql.DB and *sql.Tx.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// From returns the transaction opened by an enclosing Run, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	t, ok := ctx.Value(key{}).(*sql.Tx)
	return t, ok
}

// Using returns the transaction carried by ctx, or db when there is none.
func Using(ctx context.Context, db *sql.DB) Conn {
	if t, ok := From(ctx); ok {
		return t
	}
	return db
}

// Run calls fn inside a transaction. When ctx already carries one, fn joins it
// and the enclosing Run decides the outcome. Otherwise a transaction is begun
// on db, committed when fn succeeds and rolled back when it fails or panics.
func Run(ctx context.Context, db *sql.DB, fn func(ctx context.Context, t *sql.Tx) error) (err error) {
	if t, ok := From(ctx); ok {
		return fn(ctx, t)
	}

	t, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = t.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := t.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(context.WithValue(ctx, key{}, t), t); err != nil {
		return err
	}
	if err = t.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
