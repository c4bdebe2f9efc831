// Package sqlserver wires the Microsoft SQL Server driver into tablepeek.
package sqlserver

import (
	"strconv"
	"strings"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/sqldb"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/pkg/errors"
)

const queryListTables = `
	SELECT t.name
	FROM sys.tables t
	ORDER BY t.name`

var classes = map[string]database.Class{
	"208":   database.ClassNotFound,   // invalid object name
	"4060":  database.ClassNotFound,   // cannot open database
	"229":   database.ClassPermission, // permission denied on object
	"230":   database.ClassPermission, // permission denied on column
	"18456": database.ClassAuth,       // login failed
}

// New creates a SQL Server driver.
func New() *sqldb.Driver {
	return sqldb.New("sqlserver", Dialect{})
}

// Dialect is the Transact-SQL dialect.
type Dialect struct{}

// Name returns "sqlserver".
func (Dialect) Name() string {
	return "sqlserver"
}

// ListTablesQuery returns every user table of the current database.
func (Dialect) ListTablesQuery() string {
	return queryListTables
}

// QuoteIdent wraps ident in square brackets.
func (Dialect) QuoteIdent(ident string) string {
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
}

// Describe maps an mssql.Error to its error number.
func (Dialect) Describe(err error) database.NativeError {
	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return describe(msErr)
	}
	var msErrPtr *mssql.Error
	if errors.As(err, &msErrPtr) && msErrPtr != nil {
		return describe(*msErrPtr)
	}
	return database.Generic(err)
}

func describe(e mssql.Error) database.NativeError {
	code := strconv.Itoa(int(e.Number))
	return database.NativeError{
		Code:    code,
		Message: e.Message,
		Class:   database.Classify(code, classes),
	}
}
