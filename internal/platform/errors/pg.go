package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCode

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes a read-only service cares about
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrCannotConnectNow     = "57P03" // startup in progress
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsNoRows reports whether the error is pgx's no-rows sentinel
func IsNoRows(err error) bool { return stderrs.Is(Root(err), pgx.ErrNoRows) }

// FromDB maps a query error into the project taxonomy.
// No rows becomes NotFound; everything else is a DB error wrapping the cause
func FromDB(err error, op string) error {
	if err == nil {
		return nil
	}
	if IsNoRows(err) {
		return NotFoundf("%s: no rows", op)
	}
	return Wrapf(err, ErrorCodeDB, "%s failed", op)
}

// Retryable reports whether the error is transient enough to retry
func Retryable(err error) bool {
	return IsSQLState(err, pgErrSerializationFailure) ||
		IsSQLState(err, pgErrDeadlockDetected) ||
		IsSQLState(err, pgErrCannotConnectNow)
}
