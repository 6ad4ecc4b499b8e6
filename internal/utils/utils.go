package utils

import (
	"github.com/cznic/mathutil"
	"math"
)

// RoundUp2 - Returns the nearest 2 to the power of x that is equal or bigger than a
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	a--
	a |= a >> 1
	a |= a >> 2
	a |= a >> 4
	a |= a >> 8
	a |= a >> 16
	a |= a >> 32
	a++

	return a
}

// NextPrime - Returns the nearest prime that is equal or bigger than a.
// It returns false if no such prime fits in an int64.
func NextPrime(a int64) (prime int64, ok bool) {
	if a <= 2 {
		return 2, true
	}

	// mathutil gives the first prime strictly bigger than its argument
	p, ok := mathutil.NextPrimeUint64(uint64(a - 1))
	if !ok || p > uint64(math.MaxInt64) {
		return 0, false
	}

	return int64(p), true
}
