package sqlserver_test

import (
	"testing"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/sqlserver"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	d := sqlserver.Dialect{}

	require.Equal(t, "[users]", d.QuoteIdent("users"))
	require.Equal(t, "[a]]b]", d.QuoteIdent("a]b"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want database.Class
	}{
		{
			name: "invalid object",
			err:  errors.Wrap(mssql.Error{Number: 208, Message: "Invalid object name 'People'."}, "execute"),
			code: "208",
			want: database.ClassNotFound,
		},
		{
			name: "pointer",
			err:  &mssql.Error{Number: 229, Message: "The SELECT permission was denied"},
			code: "229",
			want: database.ClassPermission,
		},
		{
			name: "login failed",
			err:  mssql.Error{Number: 18456, Message: "Login failed for user 'sa'."},
			code: "18456",
			want: database.ClassAuth,
		},
		{
			name: "other",
			err:  mssql.Error{Number: 102, Message: "Incorrect syntax"},
			code: "102",
			want: database.ClassUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := sqlserver.Dialect{}.Describe(tt.err)
			require.Equal(t, tt.code, n.Code)
			require.Equal(t, tt.want, n.Class)
			require.NotEmpty(t, n.Message)
		})
	}
}
