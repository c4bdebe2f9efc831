package app

import (
	"context"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TableName identifies a table within the last listing.
type TableName string

// Service coordinates application-level operations between the front-ends
// and the database. It owns the driver's connection.
type Service struct {
	driver    database.Driver
	log       logrus.FieldLogger
	connected bool
	listed    map[TableName]struct{}
}

// NewService creates a new application service.
func NewService(driver database.Driver, log logrus.FieldLogger) *Service {
	return &Service{
		driver: driver,
		log:    log,
		listed: map[TableName]struct{}{},
	}
}

// Connect establishes the database connection.
func (s *Service) Connect(ctx context.Context, dsn string) error {
	if s.connected {
		return &ErrConnection{Cause: errors.New("already connected")}
	}
	if err := s.driver.Connect(ctx, dsn); err != nil {
		s.log.WithError(err).Debug("connect failed")
		return connectionError(s.driver.Dialect(), err)
	}
	s.connected = true
	s.log.WithField("driver", s.driver.Dialect().Name()).Debug("connected")
	return nil
}

// Connected reports whether Connect succeeded and Disconnect was not called.
func (s *Service) Connected() bool {
	return s.connected
}

// Disconnect closes the database connection. It does nothing when the
// connection was never established and is safe to call more than once.
func (s *Service) Disconnect() error {
	if !s.connected {
		return nil
	}
	s.connected = false
	s.listed = map[TableName]struct{}{}
	s.log.Debug("disconnected")
	return s.driver.Close()
}

// ListTables returns the table names of the connected schema in ascending
// order. An empty schema yields an empty slice and no error.
func (s *Service) ListTables(ctx context.Context) ([]TableName, error) {
	if !s.connected {
		return nil, &ErrConnection{Cause: errors.New("not connected")}
	}

	result, err := s.driver.Query(ctx, s.driver.Dialect().ListTablesQuery())
	if err != nil {
		return nil, connectionError(s.driver.Dialect(), err)
	}
	if len(result.Columns) == 0 {
		return nil, &ErrConnection{Cause: errors.New("catalog query returned no columns")}
	}

	tables := make([]TableName, 0, len(result.Rows))
	listed := make(map[TableName]struct{}, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) == 0 || row[0].IsNull() {
			continue
		}
		name := TableName(row[0].String())
		tables = append(tables, name)
		listed[name] = struct{}{}
	}
	s.listed = listed

	s.log.WithField("tables", len(tables)).Debug("listed tables")
	return tables, nil
}

// FetchTable runs SELECT * against a table from the last listing and
// returns every row. Names that were not listed are rejected before any SQL
// is built; listed names are still quoted for the dialect.
func (s *Service) FetchTable(ctx context.Context, name TableName) (*database.ResultSet, error) {
	if _, ok := s.listed[name]; !ok {
		return nil, &ErrInput{Input: string(name), Reason: ReasonUnlisted}
	}
	if !s.connected {
		return nil, &ErrConnection{Cause: errors.New("not connected")}
	}

	dialect := s.driver.Dialect()
	query := database.SelectAll(dialect, string(name))
	log := s.log.WithField("table", string(name))

	result, err := s.driver.Query(ctx, query)
	if err != nil {
		qErr := queryError(dialect, string(name), query, err)
		log.WithError(err).WithField("code", qErr.Code).Debug("fetch failed")
		return nil, qErr
	}

	if !result.HasMetadata() {
		return nil, &ErrSchema{Table: string(name), Reason: "no column metadata"}
	}
	if len(result.Columns) == 0 {
		log.Warn("table described with zero columns, nothing to show")
	}

	log.WithFields(logrus.Fields{
		"rows":     len(result.Rows),
		"duration": result.Duration,
	}).Debug("fetched table")
	return result, nil
}
