package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Connections []Connection `mapstructure:"connections" yaml:"connections"`
	Preferences Preferences  `mapstructure:"preferences" yaml:"preferences"`
}

// Connection represents a saved database connection profile.
type Connection struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Driver   string `mapstructure:"driver" yaml:"driver"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Database string `mapstructure:"database" yaml:"database"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
	SSLMode  string `mapstructure:"sslmode" yaml:"sslmode,omitempty"`

	// Keyring keeps the password in the OS keyring instead of the file.
	Keyring bool `mapstructure:"keyring" yaml:"keyring,omitempty"`
}

// Preferences holds user preferences.
type Preferences struct {
	DefaultConnection string `mapstructure:"default_connection" yaml:"default_connection"`
	Style             string `mapstructure:"style" yaml:"style"`
	LogLevel          string `mapstructure:"log_level" yaml:"log_level"`
}

var defaultPorts = map[string]int{
	"postgres":   5432,
	"mysql":      3306,
	"sqlserver":  1433,
	"clickhouse": 9000,
}

// DefaultPort returns the conventional port for a driver, or 0.
func DefaultPort(driver string) int {
	return defaultPorts[driver]
}

// DSN builds a driver-specific connection string from the profile.
func (c Connection) DSN() string {
	switch c.Driver {
	case "mysql":
		return c.mysqlDSN()
	case "sqlserver":
		return c.sqlserverDSN()
	case "sqlite":
		return c.Database
	case "clickhouse":
		return c.urlDSN("clickhouse")
	default:
		return c.postgresDSN()
	}
}

// postgresDSN builds a PostgreSQL connection string from the connection profile.
func (c Connection) postgresDSN() string {
	dsn := "postgresql://"
	if c.Username != "" {
		dsn += url.PathEscape(c.Username)
		if c.Password != "" {
			dsn += ":" + url.PathEscape(c.Password)
		}
		dsn += "@"
	}
	dsn += c.Host
	if c.Port > 0 {
		dsn += ":" + strconv.Itoa(c.Port)
	}
	dsn += "/" + c.Database
	if c.SSLMode != "" {
		dsn += "?sslmode=" + c.SSLMode
	}
	return dsn
}

func (c Connection) mysqlDSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.hostOrLocal(), strconv.Itoa(c.portOrDefault()))
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.Timeout = 10 * time.Second
	return cfg.FormatDSN()
}

func (c Connection) sqlserverDSN() string {
	u := &url.URL{
		Scheme: "sqlserver",
		Host:   net.JoinHostPort(c.hostOrLocal(), strconv.Itoa(c.portOrDefault())),
	}
	if c.Username != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}
	q := url.Values{}
	if c.Database != "" {
		q.Set("database", c.Database)
	}
	if c.SSLMode != "" {
		q.Set("encrypt", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (c Connection) urlDSN(scheme string) string {
	u := &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(c.hostOrLocal(), strconv.Itoa(c.portOrDefault())),
		Path:   "/" + c.Database,
	}
	if c.Username != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}
	return u.String()
}

func (c Connection) hostOrLocal() string {
	if c.Host == "" {
		return "localhost"
	}
	return c.Host
}

func (c Connection) portOrDefault() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort(c.Driver)
}

// DisplayString returns a human-readable summary of the connection.
func (c Connection) DisplayString() string {
	if c.Driver == "sqlite" {
		return "sqlite:" + c.Database
	}
	s := c.Host
	if c.Port > 0 {
		s += ":" + strconv.Itoa(c.Port)
	}
	s += "/" + c.Database
	if c.Username != "" {
		s = c.Username + "@" + s
	}
	return c.Driver + "://" + s
}

// ParseDSN parses a URL-style connection string into a Connection. The
// driver is inferred from the scheme; a bare path is treated as a SQLite
// database file.
func ParseDSN(dsn string) (Connection, error) {
	if !strings.Contains(dsn, "://") {
		if dsn == "" {
			return Connection{}, errors.New("empty DSN")
		}
		return Connection{
			Name:     "sqlite-" + dsn,
			Driver:   "sqlite",
			Database: dsn,
		}, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return Connection{}, errors.Wrap(err, "invalid DSN")
	}

	driver, err := driverForScheme(u.Scheme)
	if err != nil {
		return Connection{}, err
	}

	conn := Connection{
		Driver:   driver,
		Host:     u.Hostname(),
		Database: strings.TrimPrefix(u.Path, "/"),
		SSLMode:  u.Query().Get("sslmode"),
	}

	switch driver {
	case "sqlserver":
		conn.Database = u.Query().Get("database")
		conn.SSLMode = u.Query().Get("encrypt")
	case "sqlite":
		conn.Database = u.Host + u.Path
		conn.Host = ""
	}

	if u.User != nil {
		conn.Username = u.User.Username()
		if p, ok := u.User.Password(); ok {
			conn.Password = p
		}
	}

	if portStr := u.Port(); portStr != "" {
		conn.Port, _ = strconv.Atoi(portStr)
	}
	if conn.Port == 0 {
		conn.Port = DefaultPort(driver)
	}

	// Auto-generate a name
	if driver == "sqlite" {
		conn.Name = "sqlite-" + conn.Database
	} else {
		conn.Name = fmt.Sprintf("%s-%s-%d-%s", driver, conn.Host, conn.Port, conn.Database)
	}

	return conn, nil
}

func driverForScheme(scheme string) (string, error) {
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	case "sqlserver", "mssql":
		return "sqlserver", nil
	case "clickhouse":
		return "clickhouse", nil
	case "sqlite", "sqlite3", "file":
		return "sqlite", nil
	default:
		return "", errors.Errorf("unsupported DSN scheme %q", scheme)
	}
}

// HasConnection checks if a connection with the given name already exists.
func (cfg *Config) HasConnection(name string) bool {
	_, ok := cfg.Lookup(name)
	return ok
}

// Lookup returns the connection with the given name.
func (cfg *Config) Lookup(name string) (Connection, bool) {
	for _, c := range cfg.Connections {
		if c.Name == name {
			return c, true
		}
	}
	return Connection{}, false
}

// AddConnection appends a connection, replacing one with the same name.
func (cfg *Config) AddConnection(conn Connection) {
	for i, c := range cfg.Connections {
		if c.Name == conn.Name {
			cfg.Connections[i] = conn
			return
		}
	}
	cfg.Connections = append(cfg.Connections, conn)
}
