// Package safe converts between integer widths and fails instead of wrapping.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer kind the wallet moves between wire, storage and Go APIs.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// bounds widens v into a sign flag and magnitude so every range check is one comparison.
func bounds[T Integer](v T) (negative bool, magnitude uint64, err error) {
	switch value := any(v).(type) {
	case int:
		return value < 0, absInt64(int64(value)), nil
	case int32:
		return value < 0, absInt64(int64(value)), nil
	case int64:
		return value < 0, absInt64(value), nil
	case uint:
		return false, uint64(value), nil
	case uint32:
		return false, uint64(value), nil
	case uint64:
		return false, value, nil
	default:
		return false, 0, fmt.Errorf("unsupported type %T", v)
	}
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	negative, magnitude, err := bounds(v)
	if err != nil {
		return 0, err
	}
	if negative || magnitude > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(magnitude), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	negative, magnitude, err := bounds(v)
	if err != nil {
		return 0, err
	}
	if negative {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return magnitude, nil
}

// Int64 converts v to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	negative, magnitude, err := bounds(v)
	if err != nil {
		return 0, err
	}
	if negative {
		return int64(v), nil
	}
	if magnitude > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(magnitude), nil
}

// Int converts v to int.
func Int[T Integer](v T) (int, error) {
	n, err := Int64(v)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(n), nil
}
