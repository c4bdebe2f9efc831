package database

import (
	"context"
	"net"
	"strings"

	"github.com/pkg/errors"
)

// Class groups vendor error codes by what went wrong.
type Class int

const (
	ClassUnknown Class = iota
	ClassNotFound
	ClassPermission
	ClassAuth
	ClassUnreachable
)

func (c Class) String() string {
	switch c {
	case ClassNotFound:
		return "not found"
	case ClassPermission:
		return "permission denied"
	case ClassAuth:
		return "authentication failed"
	case ClassUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// NativeError is a driver error reduced to its vendor code and message.
type NativeError struct {
	Code    string
	Message string
	Class   Class
}

// Missing reports whether the error belongs to the "object not found or no
// permission" family.
func (n NativeError) Missing() bool {
	return n.Class == ClassNotFound || n.Class == ClassPermission
}

// Generic describes errors that carry no vendor code. Network failures are
// classified as unreachable.
func Generic(err error) NativeError {
	if err == nil {
		return NativeError{}
	}

	n := NativeError{Message: err.Error()}

	var netErr net.Error
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr), errors.As(err, &netErr):
		n.Class = ClassUnreachable
	case errors.Is(err, context.DeadlineExceeded):
		n.Class = ClassUnreachable
	case strings.Contains(err.Error(), "connection refused"):
		n.Class = ClassUnreachable
	}

	return n
}

// Classify looks code up in table, returning ClassUnknown when absent.
func Classify(code string, table map[string]Class) Class {
	if c, ok := table[code]; ok {
		return c
	}
	return ClassUnknown
}
