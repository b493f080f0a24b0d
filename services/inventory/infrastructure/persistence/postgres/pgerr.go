package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	invdomain "github.com/ghuser/inventree/services/inventory/domain"
)

// SQLSTATE codes this package cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrCode returns the SQLSTATE and constraint name when err is a Postgres
// error, or empty strings otherwise.
func pgErrCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// wrapStorage tags an unexpected database error with the storage sentinel.
// The enclosing transaction rolls back, so the caller may retry the whole
// operation.
func wrapStorage(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", invdomain.ErrStorage, op, err)
}
