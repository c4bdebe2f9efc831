package database

import "context"

// Driver defines the query-execution capability the application consumes.
// A driver owns exactly one connection and is not safe for concurrent use.
type Driver interface {
	// Connect establishes the connection.
	Connect(ctx context.Context, dsn string) error

	// Close closes the connection.
	Close() error

	// Ping checks if the connection is alive.
	Ping(ctx context.Context) error

	// Query runs a SQL query and materializes every row before returning.
	Query(ctx context.Context, query string) (*ResultSet, error)

	// Dialect returns the SQL dialect spoken by the connected server.
	Dialect() Dialect
}

// Dialect captures the vendor-specific bits of SQL the application needs.
type Dialect interface {
	// Name returns the driver name, e.g. "postgres".
	Name() string

	// ListTablesQuery returns the catalog query listing table names in
	// ascending order. It yields a single text column.
	ListTablesQuery() string

	// QuoteIdent quotes an identifier so it can be interpolated into SQL.
	QuoteIdent(ident string) string

	// Describe extracts the vendor error code and class from err.
	Describe(err error) NativeError
}

// SelectAll returns the query fetching every column of table.
func SelectAll(d Dialect, table string) string {
	return "SELECT * FROM " + d.QuoteIdent(table)
}
