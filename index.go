// Seed to bit index derivation.
//
// The hash family is a list of integer seeds 0..k-1. Each seed selects one
// bit as (base + seed*step) mod size, where base is the element's 64-bit
// hash and step depends on the Derivation. All arithmetic is unsigned and
// evaluated in 128 bits, so the result is always in [0, size) and never
// depends on overflow or sign.
package bloom

import "math/bits"

// Derivation selects how seeds turn one base hash into k bit indexes.
type Derivation int

const (
	// DeriveDouble uses double hashing: step is a second hash mixed from
	// the base and forced odd. Seeds land on well-spread bits, so the
	// false-positive rate tracks (1 - e^(-kn/m))^k.
	DeriveDouble Derivation = 1

	// DeriveLinear uses step 1, giving the plain "base hash plus seed"
	// family. An element's k bits are adjacent, which raises the
	// false-positive rate well above the double hashing figure.
	DeriveLinear Derivation = 2
)

func (d Derivation) valid() bool {
	return d == DeriveDouble || d == DeriveLinear
}

// step returns the seed multiplier for base.
func (d Derivation) step(base uint64) uint64 {
	if d == DeriveLinear {
		return 1
	}
	return mix(base) | 1
}

// index returns (base + seed*step) mod size. size must be non-zero.
func index(base, step, seed, size uint64) uint64 {
	hi, lo := bits.Mul64(seed, step)
	lo, carry := bits.Add64(lo, base, 0)
	return bits.Rem64(hi+carry, lo, size)
}

// mix is the murmur3 64-bit finaliser. It decorrelates the second hash from
// the first without hashing the signature again.
func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb3f99ba5b13b
	x ^= x >> 33
	return x
}
