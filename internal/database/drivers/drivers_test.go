package drivers_test

import (
	"testing"

	"github.com/joacominatel/tablepeek/internal/database/drivers"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, name := range []string{"postgres", "postgresql", "pgx", "mysql", "sqlserver", "mssql", "sqlite", "sqlite3", "clickhouse"} {
		t.Run(name, func(t *testing.T) {
			d, err := drivers.New(name)
			require.NoError(t, err)
			require.Equal(t, drivers.Canonical(name), d.Dialect().Name())
		})
	}

	_, err := drivers.New("oracle")
	require.ErrorIs(t, err, drivers.ErrUnknownDriver)
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"clickhouse", "mysql", "postgres", "sqlite", "sqlserver"}, drivers.Names())
}
