package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/pkg/errors"
)

// SQLSTATE codes the application reacts to.
var classes = map[string]database.Class{
	"42P01": database.ClassNotFound,   // undefined_table
	"3D000": database.ClassNotFound,   // invalid_catalog_name
	"42501": database.ClassPermission, // insufficient_privilege
	"28P01": database.ClassAuth,       // invalid_password
	"28000": database.ClassAuth,       // invalid_authorization_specification
	"08001": database.ClassUnreachable,
	"08006": database.ClassUnreachable,
}

// Dialect is the PostgreSQL dialect.
type Dialect struct{}

// Name returns "postgres".
func (Dialect) Name() string {
	return "postgres"
}

// ListTablesQuery returns the base tables of the current schema.
func (Dialect) ListTablesQuery() string {
	return queryListTables
}

// QuoteIdent wraps ident in double quotes.
func (Dialect) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Describe maps a *pgconn.PgError to its SQLSTATE.
func (Dialect) Describe(err error) database.NativeError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return database.NativeError{
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Class:   database.Classify(pgErr.Code, classes),
		}
	}
	return database.Generic(err)
}
