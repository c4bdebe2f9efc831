package main

import (
	"strings"

	"github.com/joacominatel/tablepeek/internal/app"
	"github.com/joacominatel/tablepeek/internal/config"
	"github.com/joacominatel/tablepeek/internal/database/drivers"
	"github.com/pkg/errors"
)

type options struct {
	DSN        string
	Connection string
	Driver     string
}

// target is a connection profile plus the string handed to the driver.
type target struct {
	Conn config.Connection
	DSN  string
}

// resolve picks what to connect to: an explicit DSN, then a named profile,
// then the default profile.
func resolve(cfg *config.Config, opts options) (target, error) {
	if opts.DSN != "" {
		return fromDSN(opts)
	}

	var conn config.Connection
	switch {
	case opts.Connection != "":
		c, ok := cfg.Lookup(opts.Connection)
		if !ok {
			return target{}, &app.ErrConfig{Cause: errors.Errorf("no saved connection named %q", opts.Connection)}
		}
		conn = c
	default:
		c := config.DefaultConnection(cfg)
		if c == nil {
			return target{}, &app.ErrConfig{Cause: errors.New("nothing to connect to: pass --dsn or save a connection")}
		}
		conn = *c
	}

	conn.Driver = drivers.Canonical(conn.Driver)
	conn, err := config.ResolvePassword(conn)
	if err != nil {
		return target{}, &app.ErrConfig{Cause: err}
	}
	return target{Conn: conn, DSN: conn.DSN()}, nil
}

func fromDSN(opts options) (target, error) {
	// Driver-native strings such as mysql's user:pass@tcp(host)/db carry no
	// scheme, so --driver wins over whatever ParseDSN infers.
	if opts.Driver != "" {
		driver := drivers.Canonical(opts.Driver)
		conn := config.Connection{Name: opts.Connection, Driver: driver}
		if parsed, err := config.ParseDSN(opts.DSN); err == nil && parsed.Driver == driver {
			conn = parsed
		} else if driver == "sqlite" {
			conn.Database = opts.DSN
		}
		if opts.Connection != "" {
			conn.Name = opts.Connection
		}
		if conn.Name == "" {
			conn.Name = driver
		}
		return target{Conn: conn, DSN: opts.DSN}, nil
	}

	conn, err := config.ParseDSN(opts.DSN)
	if err != nil {
		return target{}, &app.ErrConfig{Cause: err}
	}
	if opts.Connection != "" {
		conn.Name = opts.Connection
	}
	return target{Conn: conn, DSN: driverDSN(conn, opts.DSN)}, nil
}

// driverDSN returns the string the driver accepts for a URL-style DSN.
// pgx and clickhouse-go take the URL as is; the others need it rebuilt.
func driverDSN(conn config.Connection, raw string) string {
	switch conn.Driver {
	case "mysql", "sqlite":
		return conn.DSN()
	case "sqlserver":
		if !strings.HasPrefix(raw, "sqlserver://") {
			return conn.DSN()
		}
	}
	return raw
}
