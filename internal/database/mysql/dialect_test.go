package mysql_test

import (
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	d := mysql.Dialect{}

	require.Equal(t, "`users`", d.QuoteIdent("users"))
	require.Equal(t, "`we``ird`", d.QuoteIdent("we`ird"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		number uint16
		want   database.Class
	}{
		{number: 1146, want: database.ClassNotFound},
		{number: 1142, want: database.ClassPermission},
		{number: 1045, want: database.ClassAuth},
		{number: 1064, want: database.ClassUnknown},
	}

	for _, tt := range tests {
		err := errors.Wrap(&gomysql.MySQLError{Number: tt.number, Message: "boom"}, "execute")

		n := mysql.Dialect{}.Describe(err)
		require.Equal(t, tt.want, n.Class, "error %d", tt.number)
		require.Equal(t, "boom", n.Message)
	}

	n := mysql.Dialect{}.Describe(&gomysql.MySQLError{Number: 1146})
	require.Equal(t, "1146", n.Code)
}

func TestNew(t *testing.T) {
	d := mysql.New()
	require.Equal(t, "mysql", d.Dialect().Name())
	require.Error(t, d.Ping(t.Context()))
}
