package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/postgres"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	d := postgres.Dialect{}

	require.Equal(t, `"users"`, d.QuoteIdent("users"))
	require.Equal(t, `"Order Items"`, d.QuoteIdent("Order Items"))
	require.Equal(t, `"a""; DROP TABLE x; --"`, d.QuoteIdent(`a"; DROP TABLE x; --`))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code string
		want database.Class
	}{
		{code: "42P01", want: database.ClassNotFound},
		{code: "42501", want: database.ClassPermission},
		{code: "28P01", want: database.ClassAuth},
		{code: "08006", want: database.ClassUnreachable},
		{code: "22012", want: database.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := errors.Wrap(&pgconn.PgError{Code: tt.code, Message: "boom"}, "execute")

			n := postgres.Dialect{}.Describe(err)
			require.Equal(t, tt.code, n.Code)
			require.Equal(t, "boom", n.Message)
			require.Equal(t, tt.want, n.Class)
		})
	}

	t.Run("not a server error", func(t *testing.T) {
		n := postgres.Dialect{}.Describe(errors.New("connection refused"))
		require.Empty(t, n.Code)
		require.Equal(t, database.ClassUnreachable, n.Class)
	})
}
