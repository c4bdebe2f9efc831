// Package drivers maps driver names to database.Driver constructors.
package drivers

import (
	"sort"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/clickhouse"
	"github.com/joacominatel/tablepeek/internal/database/mysql"
	"github.com/joacominatel/tablepeek/internal/database/postgres"
	"github.com/joacominatel/tablepeek/internal/database/sqlite"
	"github.com/joacominatel/tablepeek/internal/database/sqlserver"
	"github.com/pkg/errors"
)

var registry = map[string]func() database.Driver{
	"postgres":   func() database.Driver { return postgres.New() },
	"mysql":      func() database.Driver { return mysql.New() },
	"sqlserver":  func() database.Driver { return sqlserver.New() },
	"sqlite":     func() database.Driver { return sqlite.New() },
	"clickhouse": func() database.Driver { return clickhouse.New() },
}

var aliases = map[string]string{
	"postgresql": "postgres",
	"pgx":        "postgres",
	"mssql":      "sqlserver",
	"sqlite3":    "sqlite",
}

// ErrUnknownDriver is returned for driver names with no registered constructor.
var ErrUnknownDriver = errors.New("unknown driver")

// Canonical resolves aliases such as "postgresql" to a registered name.
func Canonical(name string) string {
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// New creates an unconnected driver by name.
func New(name string) (database.Driver, error) {
	ctor, ok := registry[Canonical(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDriver, "%q (supported: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the registered driver names in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
