package advanced

import "math"

// Bit-level float64 helpers for the spatial index keys. The quadtree and
// bintree carve space into power-of-two aligned cells, so they need to read
// and construct binary exponents exactly, without going through logarithms
// and their rounding.

// PowerOf2 computes 2^exp exactly by building the IEEE-754 bit pattern.
func PowerOf2(exp int) float64 {
	if exp > 1023 || exp < -1022 {
		fatalf("exponent %d out of bounds for a float64 power of two", exp)
	}
	expBias := int64(exp) + 1023
	return math.Float64frombits(uint64(expBias) << 52)
}

// Exponent returns the unbiased binary exponent of d. Zero and denormalized
// values report the minimum exponent.
func Exponent(d float64) int {
	biased := int((math.Float64bits(d) >> 52) & 0x7ff)
	return biased - 1023
}

// A double has 52 mantissa bits, so once an interval's width is below about
// 2^-50 of its magnitude, subdividing it further cannot produce child
// intervals that are representably distinct from their parent. Subdivision
// must stop there or a nearly-zero-width input (a point's trivial envelope,
// a vertical segment's x-extent) would recurse until stack exhaustion.
const minBinaryExponent = -50

// IsZeroWidth reports whether the interval [min, max] is effectively zero
// width at float64 precision, relative to its magnitude.
func IsZeroWidth(min, max float64) bool {
	width := max - min
	if width == 0.0 {
		return true
	}

	maxAbs := math.Max(math.Abs(min), math.Abs(max))
	scaledInterval := width / maxAbs
	return Exponent(scaledInterval) <= minBinaryExponent
}
