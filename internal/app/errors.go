package app

import (
	"fmt"

	"github.com/joacominatel/tablepeek/internal/database"
)

// Kind identifies the family of a Failure.
type Kind int

const (
	KindConnectivity Kind = iota
	KindSchema
	KindQuery
	KindInput
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "ConnectivityError"
	case KindSchema:
		return "SchemaError"
	case KindQuery:
		return "QueryError"
	case KindInput:
		return "InputError"
	case KindConfig:
		return "ConfigError"
	default:
		return "Error"
	}
}

// Failure is implemented by every error the service returns.
type Failure interface {
	error
	Kind() Kind
	NativeCode() string
}

// Hints shown next to the native error for well-known classes.
const (
	HintAuth        = "check the username and password"
	HintUnreachable = "check that the server is running and reachable from this machine"
	HintMissing     = "the table may have been dropped or you may lack SELECT permission on it"
)

// ErrConnection represents a database connection error.
type ErrConnection struct {
	Code  string
	Class database.Class
	Hint  string
	Cause error
}

func (e *ErrConnection) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ErrConnection) Unwrap() error {
	return e.Cause
}

// Kind returns KindConnectivity.
func (e *ErrConnection) Kind() Kind { return KindConnectivity }

// NativeCode returns the vendor error code, if any.
func (e *ErrConnection) NativeCode() string { return e.Code }

// ErrSchema represents a table that cannot be described.
type ErrSchema struct {
	Table  string
	Reason string
}

func (e *ErrSchema) Error() string {
	return fmt.Sprintf("schema error: %s: %s", e.Table, e.Reason)
}

// Kind returns KindSchema.
func (e *ErrSchema) Kind() Kind { return KindSchema }

// NativeCode returns an empty string; schema errors have no vendor code.
func (e *ErrSchema) NativeCode() string { return "" }

// ErrQuery represents a query execution error.
type ErrQuery struct {
	Table string
	Query string
	Code  string
	Class database.Class
	Hint  string
	Cause error
}

func (e *ErrQuery) Error() string {
	return fmt.Sprintf("query error: %v", e.Cause)
}

func (e *ErrQuery) Unwrap() error {
	return e.Cause
}

// Kind returns KindQuery.
func (e *ErrQuery) Kind() Kind { return KindQuery }

// NativeCode returns the vendor error code, if any.
func (e *ErrQuery) NativeCode() string { return e.Code }

// Reasons carried by ErrInput.
const (
	ReasonNotANumber = "not a number"
	ReasonOutOfRange = "out of range"
	ReasonUnlisted   = "table is not in the current listing"
)

// ErrInput represents an unusable table selection.
type ErrInput struct {
	Input  string
	Reason string
}

func (e *ErrInput) Error() string {
	return fmt.Sprintf("input error: %q: %s", e.Input, e.Reason)
}

// Kind returns KindInput.
func (e *ErrInput) Kind() Kind { return KindInput }

// NativeCode returns an empty string.
func (e *ErrInput) NativeCode() string { return "" }

// ErrConfig represents a configuration error.
type ErrConfig struct {
	Cause error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config error: %v", e.Cause)
}

func (e *ErrConfig) Unwrap() error {
	return e.Cause
}

// Kind returns KindConfig.
func (e *ErrConfig) Kind() Kind { return KindConfig }

// NativeCode returns an empty string.
func (e *ErrConfig) NativeCode() string { return "" }

func connectionError(d database.Dialect, err error) *ErrConnection {
	native := d.Describe(err)
	e := &ErrConnection{Code: native.Code, Class: native.Class, Cause: err}
	switch native.Class {
	case database.ClassAuth:
		e.Hint = HintAuth
	case database.ClassUnreachable:
		e.Hint = HintUnreachable
	}
	return e
}

func queryError(d database.Dialect, table, query string, err error) *ErrQuery {
	native := d.Describe(err)
	e := &ErrQuery{
		Table: table,
		Query: query,
		Code:  native.Code,
		Class: native.Class,
		Cause: err,
	}
	if native.Missing() {
		e.Hint = HintMissing
	}
	return e
}
