package clickhouse_test

import (
	"testing"

	ch "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/database/clickhouse"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	require.Equal(t, "`events`", clickhouse.Dialect{}.QuoteIdent("events"))
	require.Equal(t, "`a``b`", clickhouse.Dialect{}.QuoteIdent("a`b"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int32
		want database.Class
	}{
		{code: 60, want: database.ClassNotFound},
		{code: 497, want: database.ClassPermission},
		{code: 516, want: database.ClassAuth},
		{code: 62, want: database.ClassUnknown},
	}

	for _, tt := range tests {
		err := errors.Wrap(&ch.Exception{Code: tt.code, Message: "boom"}, "execute")

		n := clickhouse.Dialect{}.Describe(err)
		require.Equal(t, tt.want, n.Class, "code %d", tt.code)
		require.Equal(t, "boom", n.Message)
	}
}
