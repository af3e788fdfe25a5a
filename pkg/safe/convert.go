// Package safe provides numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint16 converts v to uint16.
func Uint16[T Integer](v T) (uint16, error) {
	if v < 0 || uint64(v) > math.MaxUint16 {
		return 0, fmt.Errorf("value %d out of uint16 range", v)
	}
	return uint16(v), nil
}

// Int converts v to int.
func Int[T Integer](v T) (int, error) {
	if v < 0 {
		if int64(v) < math.MinInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
		return int(v), nil
	}
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
