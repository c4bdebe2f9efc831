// Package mysql wires the go-sql-driver/mysql driver into tablepeek.
package mysql

import (
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/sqldb"
	"github.com/pkg/errors"
)

const queryListTables = `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = DATABASE()
	  AND table_type = 'BASE TABLE'
	ORDER BY table_name`

// Server and client error numbers the application reacts to.
var classes = map[string]database.Class{
	"1146": database.ClassNotFound,   // ER_NO_SUCH_TABLE
	"1049": database.ClassNotFound,   // ER_BAD_DB_ERROR
	"1142": database.ClassPermission, // ER_TABLEACCESS_DENIED_ERROR
	"1044": database.ClassPermission, // ER_DBACCESS_DENIED_ERROR
	"1045": database.ClassAuth,       // ER_ACCESS_DENIED_ERROR
	"2002": database.ClassUnreachable,
	"2003": database.ClassUnreachable,
	"2005": database.ClassUnreachable,
}

// New creates a MySQL driver.
func New() *sqldb.Driver {
	return sqldb.New("mysql", Dialect{})
}

// Dialect is the MySQL dialect.
type Dialect struct{}

// Name returns "mysql".
func (Dialect) Name() string {
	return "mysql"
}

// ListTablesQuery returns the base tables of the selected database.
func (Dialect) ListTablesQuery() string {
	return queryListTables
}

// QuoteIdent wraps ident in backticks.
func (Dialect) QuoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

// Describe maps a *mysql.MySQLError to its error number.
func (Dialect) Describe(err error) database.NativeError {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		code := strconv.Itoa(int(myErr.Number))
		return database.NativeError{
			Code:    code,
			Message: myErr.Message,
			Class:   database.Classify(code, classes),
		}
	}
	return database.Generic(err)
}
