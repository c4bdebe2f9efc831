// Package sqlite wires the mattn/go-sqlite3 driver into tablepeek.
package sqlite

import (
	"strconv"
	"strings"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/sqldb"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const queryListTables = `
	SELECT name
	FROM sqlite_master
	WHERE type = 'table'
	  AND name NOT LIKE 'sqlite_%'
	ORDER BY name`

// New creates a SQLite driver. The DSN is a file path or a file: URI.
func New() *sqldb.Driver {
	return sqldb.New("sqlite3", Dialect{})
}

// Dialect is the SQLite dialect.
type Dialect struct{}

// Name returns "sqlite".
func (Dialect) Name() string {
	return "sqlite"
}

// ListTablesQuery returns every user table in the main schema.
func (Dialect) ListTablesQuery() string {
	return queryListTables
}

// QuoteIdent wraps ident in double quotes.
func (Dialect) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Describe maps a sqlite3.Error to its primary result code. SQLite reports
// missing tables as a plain SQLITE_ERROR, so the message decides the class.
func (Dialect) Describe(err error) database.NativeError {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return database.Generic(err)
	}

	n := database.NativeError{
		Code:    strconv.Itoa(int(liteErr.Code)),
		Message: liteErr.Error(),
	}

	switch liteErr.Code {
	case sqlite3.ErrError:
		if strings.Contains(n.Message, "no such table") {
			n.Class = database.ClassNotFound
		}
	case sqlite3.ErrPerm, sqlite3.ErrAuth, sqlite3.ErrReadonly:
		n.Class = database.ClassPermission
	case sqlite3.ErrCantOpen, sqlite3.ErrNotADB:
		n.Class = database.ClassUnreachable
	}

	return n
}
