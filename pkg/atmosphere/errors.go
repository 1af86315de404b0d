package atmosphere

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorKind classifies input-contract violations.
type ErrorKind int

const (
	TypeKind ErrorKind = iota + 1
	RangeKind
)

var kindStringMap = map[ErrorKind]string{
	TypeKind:  "type",
	RangeKind: "range",
}

func (k ErrorKind) String() string {
	if s, ok := kindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// Error is returned when an argument breaks the model's input contract.
// These are programming errors on the caller's side; retrying won't help.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrRange) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrType  = &Error{Kind: TypeKind}
	ErrRange = &Error{Kind: RangeKind}
)

func newTypeError(name string, v any) *Error {
	return &Error{
		Kind: TypeKind,
		Msg:  fmt.Sprintf("Expected %s to be int or float type instead %T was provided", name, v),
	}
}

// newRangeError takes the offending value already formatted, so integers
// and floats each print the way they were written.
func newRangeError(name, shown string, low, high float64) *Error {
	return &Error{
		Kind: RangeKind,
		Msg: fmt.Sprintf("%s, %s, outside defined limits of %s to %s",
			name, shown, formatLimit(low), formatLimit(high)),
	}
}

// formatNumeric prints integer kinds without a fraction and floats through
// formatValue.
func formatNumeric(v any) string {
	switch n := v.(type) {
	case float64:
		return formatValue(n)
	case float32:
		return formatValue(float64(n))
	}
	return fmt.Sprint(v)
}

// formatValue renders a float the way it reads in source: always with a
// fractional part, exponent form only for very large or very small values.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Limits are whole meters in the table, so they print without a fraction.
func formatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
