// Filter sizing.
//
// For n elements in m bits with k hash functions the false-positive rate
// is about (1 - e^(-kn/m))^k. It is minimised at k = (m/n) ln 2, where
// m = -n ln p / (ln 2)^2 bits give rate p.
package bloom

import "math"

// OptimalSize returns the bit count for n elements at false-positive rate
// p. The caller ensures n > 0 and 0 < p < 1.
func OptimalSize(n int, p float64) uint64 {
	m := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	return max(uint64(m), 1)
}

// OptimalHashCount returns the hash count that minimises the
// false-positive rate for n elements in m bits. It is at least 1.
func OptimalHashCount(m uint64, n int) int {
	if n <= 0 {
		return 1
	}
	k := math.Round(float64(m) / float64(n) * math.Ln2)
	return max(int(k), 1)
}

// ExpectedFalsePositiveRate returns (1 - e^(-kn/m))^k.
func ExpectedFalsePositiveRate(m uint64, k, n int) float64 {
	if m == 0 || k <= 0 {
		return 1
	}
	if n <= 0 {
		return 0
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}
