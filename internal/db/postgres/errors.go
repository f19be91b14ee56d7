package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes the repositories react to
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// sqlState extracts the SQLSTATE and constraint name from either driver's error type
func sqlState(err error) (code, constraint string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// isUniqueViolation reports a duplicate-key error, optionally on a named constraint
func isUniqueViolation(err error, constraint string) bool {
	code, name := sqlState(err)
	if code != codeUniqueViolation {
		return false
	}
	return constraint == "" || name == constraint
}

func isForeignKeyViolation(err error) bool {
	code, _ := sqlState(err)
	return code == codeForeignKeyViolation
}
