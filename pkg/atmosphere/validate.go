package atmosphere

import (
	"strconv"
	"strings"
)

// CheckNumeric accepts any Go integer or float value and returns it as a
// float64. Anything else (strings, bools, nil, json.Number...) is a
// TypeKind *Error naming the argument.
func CheckNumeric(name string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, newTypeError(name, v)
}

// ParseValue reads a number typed by a user or loaded from the
// environment. Whole numbers come back as int64 and everything else as
// float64, so a later range error prints the value as it was typed. Text
// that isn't a number is a TypeKind error, the same as a non-numeric value
// handed to CheckNumeric.
func ParseValue(name, s string) (any, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, newTypeError(name, s)
	}
	return f, nil
}

// ParseNumber is ParseValue converted to float64.
func ParseNumber(name, s string) (float64, error) {
	v, err := ParseValue(name, s)
	if err != nil {
		return 0, err
	}
	return CheckNumeric(name, v)
}

// CheckRange reports a TypeKind error for non-numeric v and a RangeKind
// error when v falls outside [low, high].
func CheckRange(name string, v any, low, high float64) error {
	f, err := CheckNumeric(name, v)
	if err != nil {
		return err
	}
	if low <= f && f <= high {
		return nil
	}
	return newRangeError(name, formatNumeric(v), low, high)
}

// SetSeaLevelTemperatureValue is SetSeaLevelTemperature for loosely typed
// input. The stored value is left untouched on error.
func (m *Model) SetSeaLevelTemperatureValue(v any) error {
	t, err := CheckNumeric("sea_level_temperature", v)
	if err != nil {
		return err
	}
	m.SetSeaLevelTemperature(t)
	return nil
}

// CalculateAtmosphereValue is CalculateAtmosphere for loosely typed input.
func (m *Model) CalculateAtmosphereValue(v any) (Conditions, error) {
	if err := CheckRange(heightArgName, v, MinAltitude, MaxAltitude); err != nil {
		return Conditions{}, err
	}
	h, _ := CheckNumeric(heightArgName, v)
	return m.CalculateAtmosphere(h)
}
