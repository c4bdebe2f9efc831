package database

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Null is the text every NULL value renders as.
const Null = "NULL"

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindInteger
	KindReal
	KindDate
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindDate:
		return "date"
	default:
		return "other"
	}
}

// Value is a single scalar cell as returned by a driver. Drivers build it with
// NewValue; everything above the driver only sees Kind and String.
type Value struct {
	kind Kind
	text string
}

// NullValue returns the NULL value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// TextValue returns a text value.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NewValue converts a driver scalar into a Value.
func NewValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case string:
		return TextValue(t)
	case []byte:
		if t == nil {
			return NullValue()
		}
		return TextValue(string(t))
	case int:
		return Value{kind: KindInteger, text: strconv.FormatInt(int64(t), 10)}
	case int8:
		return Value{kind: KindInteger, text: strconv.FormatInt(int64(t), 10)}
	case int16:
		return Value{kind: KindInteger, text: strconv.FormatInt(int64(t), 10)}
	case int32:
		return Value{kind: KindInteger, text: strconv.FormatInt(int64(t), 10)}
	case int64:
		return Value{kind: KindInteger, text: strconv.FormatInt(t, 10)}
	case uint:
		return Value{kind: KindInteger, text: strconv.FormatUint(uint64(t), 10)}
	case uint8:
		return Value{kind: KindInteger, text: strconv.FormatUint(uint64(t), 10)}
	case uint16:
		return Value{kind: KindInteger, text: strconv.FormatUint(uint64(t), 10)}
	case uint32:
		return Value{kind: KindInteger, text: strconv.FormatUint(uint64(t), 10)}
	case uint64:
		return Value{kind: KindInteger, text: strconv.FormatUint(t, 10)}
	case float32:
		return Value{kind: KindReal, text: strconv.FormatFloat(float64(t), 'g', -1, 32)}
	case float64:
		return Value{kind: KindReal, text: strconv.FormatFloat(t, 'g', -1, 64)}
	case time.Time:
		return Value{kind: KindDate, text: formatTime(t)}
	case *time.Time:
		if t == nil {
			return NullValue()
		}
		return Value{kind: KindDate, text: formatTime(*t)}
	case [16]byte:
		// pgx and clickhouse hand out UUID columns as raw arrays
		return Value{kind: KindOther, text: uuid.UUID(t).String()}
	case uuid.UUID:
		return Value{kind: KindOther, text: t.String()}
	case driver.Valuer:
		inner, err := t.Value()
		if err != nil {
			return Value{kind: KindOther, text: fmt.Sprintf("%v", t)}
		}
		return NewValue(inner)
	case fmt.Stringer:
		return Value{kind: KindOther, text: t.String()}
	default:
		return Value{kind: KindOther, text: fmt.Sprintf("%v", t)}
	}
}

// Kind returns the value's dynamic type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// String renders the value as text. NULL renders as "NULL".
func (v Value) String() string {
	if v.kind == KindNull {
		return Null
	}
	return v.text
}

func formatTime(t time.Time) string {
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format("2006-01-02 15:04:05.999999")
}
