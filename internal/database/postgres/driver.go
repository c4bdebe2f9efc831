package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/pkg/errors"
)

// Driver implements the database.Driver interface for PostgreSQL.
type Driver struct {
	pool   *pgxpool.Pool
	dbName string
}

// New creates a new PostgreSQL driver.
func New() *Driver {
	return &Driver{}
}

// applicationName shows up in pg_stat_activity unless the DSN sets one.
const applicationName = "tablepeek"

// Connect opens a pool holding exactly one connection, so every statement of
// a session runs on the same backend.
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return errors.Wrap(err, "parse dsn")
	}

	cfg.MaxConns = 1
	cfg.MinConns = 1
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "connect")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return errors.Wrap(err, "ping")
	}

	d.pool = pool
	d.dbName = cfg.ConnConfig.Database
	return nil
}

// Close closes the connection pool.
func (d *Driver) Close() error {
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
	return nil
}

// Ping checks if the connection is alive.
func (d *Driver) Ping(ctx context.Context) error {
	if d.pool == nil {
		return errors.New("not connected")
	}
	return d.pool.Ping(ctx)
}

// Dialect returns the PostgreSQL dialect.
func (d *Driver) Dialect() database.Dialect {
	return Dialect{}
}

// DatabaseName returns the name of the connected database.
func (d *Driver) DatabaseName() string {
	return d.dbName
}

// Query runs a SQL query and returns the results.
func (d *Driver) Query(ctx context.Context, query string) (*database.ResultSet, error) {
	if d.pool == nil {
		return nil, errors.New("not connected")
	}

	start := time.Now()

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "execute")
	}
	defer rows.Close()

	columns := describe(rows)

	var resultRows []database.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		row := make(database.Row, len(values))
		for i, v := range values {
			row[i] = database.NewValue(v)
		}
		resultRows = append(resultRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows")
	}

	return &database.ResultSet{
		Columns:  columns,
		Rows:     resultRows,
		Duration: time.Since(start),
	}, nil
}

// describe returns nil for statements without a row description.
func describe(rows pgx.Rows) []database.Column {
	fields := rows.FieldDescriptions()
	if fields == nil {
		return nil
	}

	typeMap := rows.Conn().TypeMap()
	columns := make([]database.Column, len(fields))
	for i, f := range fields {
		columns[i] = database.Column{Name: f.Name, Position: i}
		if t, ok := typeMap.TypeForOID(f.DataTypeOID); ok {
			columns[i].DataType = t.Name
		}
	}
	return columns
}
