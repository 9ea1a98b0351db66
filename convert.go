package whisparg

import (
	"strconv"

	"github.com/pkg/errors"
)

// ConvertFunc converts a raw value token into a typed value.
type ConvertFunc[T any] func(string) (T, error)

// Builtin enumerates the value types with automatic conversions. Any other
// type must be resolved through ResolveFunc or ParseFunc with an explicit
// ConvertFunc; leaving the converter out is a compile error, not a runtime
// one.
type Builtin interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string | bool | Flag
}

// converterFor returns the built-in converter for T.
func converterFor[T Builtin]() ConvertFunc[T] {
	var zero T
	switch any(zero).(type) {
	case int:
		return signedConverter[T](0, func(v int64) any { return int(v) })
	case int8:
		return signedConverter[T](8, func(v int64) any { return int8(v) })
	case int16:
		return signedConverter[T](16, func(v int64) any { return int16(v) })
	case int32:
		return signedConverter[T](32, func(v int64) any { return int32(v) })
	case int64:
		return signedConverter[T](64, func(v int64) any { return v })
	case uint:
		return unsignedConverter[T](0, func(v uint64) any { return uint(v) })
	case uint8:
		return unsignedConverter[T](8, func(v uint64) any { return uint8(v) })
	case uint16:
		return unsignedConverter[T](16, func(v uint64) any { return uint16(v) })
	case uint32:
		return unsignedConverter[T](32, func(v uint64) any { return uint32(v) })
	case uint64:
		return unsignedConverter[T](64, func(v uint64) any { return v })
	case float32:
		return floatConverter[T](32, func(v float64) any { return float32(v) })
	case float64:
		return floatConverter[T](64, func(v float64) any { return v })
	case string:
		return func(s string) (T, error) {
			return any(s).(T), nil
		}
	case bool:
		return func(s string) (T, error) {
			v, err := parseBool(s)
			if err != nil {
				var zero T
				return zero, err
			}
			return any(v).(T), nil
		}
	case Flag:
		// Presence of the switch is the signal; the token is ignored.
		return func(string) (T, error) {
			return any(FlagTrue).(T), nil
		}
	}
	panic("whisparg: no built-in converter")
}

func signedConverter[T Builtin](bitSize int, cast func(int64) any) ConvertFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			var zero T
			return zero, err
		}
		return cast(v).(T), nil
	}
}

func unsignedConverter[T Builtin](bitSize int, cast func(uint64) any) ConvertFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			var zero T
			return zero, err
		}
		return cast(v).(T), nil
	}
}

func floatConverter[T Builtin](bitSize int, cast func(float64) any) ConvertFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			var zero T
			return zero, err
		}
		return cast(v).(T), nil
	}
}

// parseBool accepts "true" and "false", then falls back to integer parsing
// with non-zero meaning true.
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false, errors.New(`value must be either "true"(1) or "false"(0)`)
	}
	return v != 0, nil
}
