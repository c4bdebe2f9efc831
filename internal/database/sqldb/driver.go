// Package sqldb implements database.Driver on top of database/sql for every
// vendor that ships a database/sql driver.
package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/pkg/errors"
)

// Driver is a database/sql backed database.Driver.
type Driver struct {
	driverName string
	dialect    database.Dialect
	conn       *sql.DB
}

// New creates a driver that opens connections with sql.Open(driverName, dsn).
func New(driverName string, dialect database.Dialect) *Driver {
	return &Driver{
		driverName: driverName,
		dialect:    dialect,
	}
}

// Connect opens the database and verifies it is reachable.
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	conn, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return errors.Wrapf(err, "open %s", d.driverName)
	}

	// one long-lived connection per session
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return errors.Wrap(err, "ping")
	}

	d.conn = conn
	return nil
}

// Close closes the database handle.
func (d *Driver) Close() error {
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

// Ping checks if the connection is alive.
func (d *Driver) Ping(ctx context.Context) error {
	if d.conn == nil {
		return errors.New("not connected")
	}
	return d.conn.PingContext(ctx)
}

// Dialect returns the driver's dialect.
func (d *Driver) Dialect() database.Dialect {
	return d.dialect
}

// DB exposes the underlying handle.
func (d *Driver) DB() *sql.DB {
	return d.conn
}

// Query runs a SQL query and materializes the results.
func (d *Driver) Query(ctx context.Context, query string) (*database.ResultSet, error) {
	if d.conn == nil {
		return nil, errors.New("not connected")
	}

	start := time.Now()

	rows, err := d.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "execute")
	}
	defer rows.Close()

	columns := describe(rows)

	var resultRows []database.Row
	for rows.Next() {
		// Create a slice of any to represent each column, and a second
		// slice to contain pointers to each item in the first.
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
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

// describe returns nil when the driver cannot produce column metadata.
func describe(rows *sql.Rows) []database.Column {
	types, err := rows.ColumnTypes()
	if err != nil {
		names, err := rows.Columns()
		if err != nil {
			return nil
		}
		columns := make([]database.Column, len(names))
		for i, name := range names {
			columns[i] = database.Column{Name: name, Position: i}
		}
		return columns
	}

	columns := make([]database.Column, len(types))
	for i, t := range types {
		columns[i] = database.Column{
			Name:     t.Name(),
			Position: i,
			DataType: t.DatabaseTypeName(),
		}
	}
	return columns
}
