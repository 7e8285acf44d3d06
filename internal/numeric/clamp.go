// Package numeric collects small generic numeric helpers, used by the
// root pixcore package's pixel arithmetic: saturating clamps and min/max
// that behave identically across integer and float pixel types (uint8
// samples, uint16/uint32 gray levels, float32/float64 accumulators).
package numeric

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// SaturateUint32 clamps a signed 64-bit intermediate result into the
// unsigned range [0, maxVal], the pattern every saturating pixel op in
// this module follows (spec §4.4: "Output is saturated to the destination
// range, no wrap").
func SaturateUint32(v int64, maxVal uint32) uint32 {
	if v < 0 {
		return 0
	}
	if v > int64(maxVal) {
		return maxVal
	}
	return uint32(v)
}
