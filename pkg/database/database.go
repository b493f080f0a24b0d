// Package database provides the PostgreSQL connection pool and the
// scoped-transaction helper every repository mutation goes through.
//
// Transaction discipline: WithTx opens exactly one transaction, runs the
// given function, and commits or rolls back on every exit path including
// panics. Nesting is forbidden: calling WithTx from inside a WithTx
// callback fails with the transaction-state sentinel instead of silently
// stacking transactions.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/ghuser/inventree/pkg/logger"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
)

// Database wraps *sql.DB (pgx stdlib driver) with pool configuration and
// the WithTx helper.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a connection pool against dbURL and verifies connectivity.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// DB returns the underlying *sql.DB for plain (non-transactional) reads.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

// txKey marks a context that already carries an open transaction.
type txKey struct{}

// inTx reports whether ctx is already inside a WithTx scope.
func inTx(ctx context.Context) bool {
	return ctx.Value(txKey{}) != nil
}

// WithTx runs fn inside one transaction. The context passed to fn is marked,
// so a nested WithTx call fails immediately with ErrTransactionState; that
// is a programming error, not a retriable condition.
//
// fn returning an error rolls the transaction back and the error is
// returned unchanged (the caller's domain sentinels survive). Begin and
// commit failures are wrapped with ErrStorage: nothing of the operation
// persists, so retrying the whole call is safe.
func (d *Database) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return d.withTx(ctx, nil, fn)
}

// WithReadTx runs fn inside one read-only transaction, giving multi-query
// reads a consistent snapshot so they never observe a half-applied
// multi-node mutation. The same no-nesting rule applies.
func (d *Database) WithReadTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return d.withTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (d *Database) withTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx *sql.Tx) error) error {
	if inTx(ctx) {
		return fmt.Errorf("%w: nested transaction", invdomain.ErrTransactionState)
	}

	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", invdomain.ErrStorage, err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				d.log.ErrorContext(ctx, "rollback after panic failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(txCtx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			// A transaction that cannot be rolled back is a leaked resource,
			// not a normal error path.
			d.log.ErrorContext(ctx, "rollback failed", "error", rbErr)
			return fmt.Errorf("%w: rollback after %v: %v", invdomain.ErrTransactionState, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if err == sql.ErrTxDone {
			return fmt.Errorf("%w: commit without open transaction", invdomain.ErrTransactionState)
		}
		return fmt.Errorf("%w: commit: %v", invdomain.ErrStorage, err)
	}
	return nil
}
