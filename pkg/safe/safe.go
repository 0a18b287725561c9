// Package safe provides checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

// Integer is any builtin signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int64 converts v to int64, failing for unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, rangeError(v, "int64")
	}
	return int64(v), nil
}

// Int32 converts v to int32 with range validation.
func Int32[T Integer](v T) (int32, error) {
	if v < 0 {
		if int64(v) < math.MinInt32 {
			return 0, rangeError(v, "int32")
		}
	} else if uint64(v) > math.MaxInt32 {
		return 0, rangeError(v, "int32")
	}
	return int32(v), nil
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, rangeError(v, "uint32")
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, rangeError(v, "uint64")
	}
	return uint64(v), nil
}

func rangeError[T Integer](v T, target string) error {
	return fmt.Errorf("value %d out of %s range", v, target)
}
