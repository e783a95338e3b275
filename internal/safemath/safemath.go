package safemath

import (
	"errors"
	"math"
	"math/bits"
)

var ErrOverflow = errors.New("number overflow")

func Add64(a, b uint64) (uint64, bool) {
	v, carry := bits.Add64(a, b, 0)
	return v, carry == 0
}

func Sub64(a, b uint64) (uint64, bool) {
	v, borrow := bits.Sub64(a, b, 0)
	return v, borrow == 0
}

func Mul64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// SaturatingAdd64 returns a+b, or math.MaxUint64 on overflow.
func SaturatingAdd64(a, b uint64) uint64 {
	if v, ok := Add64(a, b); ok {
		return v
	}
	return math.MaxUint64
}

// SaturatingSub64 returns a-b, or 0 on underflow.
func SaturatingSub64(a, b uint64) uint64 {
	if v, ok := Sub64(a, b); ok {
		return v
	}
	return 0
}

// SaturatingMul64 returns a*b, or math.MaxUint64 on overflow.
func SaturatingMul64(a, b uint64) uint64 {
	if v, ok := Mul64(a, b); ok {
		return v
	}
	return math.MaxUint64
}

// SaturatingAddInt64 returns a+b clamped to the int64 range.
func SaturatingAddInt64(a, b int64) int64 {
	s := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		if a >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return s
}

// SaturatingSubInt64 returns a-b clamped to the int64 range.
func SaturatingSubInt64(a, b int64) int64 {
	if b == math.MinInt64 {
		if a >= 0 {
			return math.MaxInt64
		}
		return a - b
	}
	return SaturatingAddInt64(a, -b)
}

// MulDiv64 computes floor(a*b/c) with a 128 bit intermediate product.
// The result saturates at math.MaxUint64 when it does not fit in 64 bits.
func MulDiv64(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, errors.New("division by zero")
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return math.MaxUint64, nil
	}
	q, _ := bits.Div64(hi, lo, c)
	return q, nil
}
