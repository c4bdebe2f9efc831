package database_test

import (
	"context"
	"net"
	"testing"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneric(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want database.Class
	}{
		{name: "plain", err: errors.New("boom"), want: database.ClassUnknown},
		{name: "deadline", err: errors.Wrap(context.DeadlineExceeded, "dial"), want: database.ClassUnreachable},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "db.invalid"}, want: database.ClassUnreachable},
		{name: "op error", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}, want: database.ClassUnreachable},
		{name: "refused text", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), want: database.ClassUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := database.Generic(tt.err)
			assert.Equal(t, tt.want, n.Class)
			assert.Equal(t, tt.err.Error(), n.Message)
			assert.Empty(t, n.Code)
		})
	}

	require.Equal(t, database.NativeError{}, database.Generic(nil))
}

func TestClassify(t *testing.T) {
	table := map[string]database.Class{"42P01": database.ClassNotFound}

	require.Equal(t, database.ClassNotFound, database.Classify("42P01", table))
	require.Equal(t, database.ClassUnknown, database.Classify("XX000", table))
	require.Equal(t, database.ClassUnknown, database.Classify("", nil))
}

func TestNativeErrorMissing(t *testing.T) {
	assert.True(t, database.NativeError{Class: database.ClassNotFound}.Missing())
	assert.True(t, database.NativeError{Class: database.ClassPermission}.Missing())
	assert.False(t, database.NativeError{Class: database.ClassAuth}.Missing())
	assert.False(t, database.NativeError{}.Missing())
}

type quoteDialect struct{}

func (quoteDialect) Name() string { return "test" }
func (quoteDialect) ListTablesQuery() string { return "" }
func (quoteDialect) QuoteIdent(s string) string { return "[" + s + "]" }
func (quoteDialect) Describe(error) database.NativeError { return database.NativeError{} }

func TestSelectAll(t *testing.T) {
	require.Equal(t, "SELECT * FROM [users]", database.SelectAll(quoteDialect{}, "users"))
}
