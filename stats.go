// Read-only introspection of a filter's bit array.
package bloom

import (
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
)

// Stats summarises a filter's load.
type Stats struct {
	Size        uint64  `json:"size"`
	HashCount   int     `json:"hash_count"`
	Algorithm   string  `json:"algorithm"`
	Inserted    uint64  `json:"inserted"`
	SetBits     uint    `json:"set_bits"`
	FillRatio   float64 `json:"fill_ratio"`
	EstimatedFP float64 `json:"estimated_fp"` // from the observed fill ratio
	ExpectedFP  float64 `json:"expected_fp"`  // from Inserted, assuming distinct elements
}

// Bits returns a copy of the bit array as a bitset of length Size.
// Later Adds do not affect the copy.
func (f *Filter[T]) Bits() *bitset.BitSet {
	words := make([]uint64, len(f.words))
	for i := range f.words {
		words[i] = atomic.LoadUint64(&f.words[i])
	}
	return bitset.FromWithLength(uint(f.size), words)
}

// Count returns the number of set bits.
func (f *Filter[T]) Count() uint {
	var n int
	for i := range f.words {
		n += bits.OnesCount64(atomic.LoadUint64(&f.words[i]))
	}
	return uint(n)
}

// FillRatio returns the fraction of bits that are set.
func (f *Filter[T]) FillRatio() float64 {
	return float64(f.Count()) / float64(f.size)
}

// EstimatedFalsePositiveRate returns FillRatio^k: the chance that k bits
// picked at random are all set.
func (f *Filter[T]) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), float64(len(f.seeds)))
}

// Stats returns a snapshot of the filter's load.
func (f *Filter[T]) Stats() Stats {
	set := f.Count()
	fill := float64(set) / float64(f.size)
	inserted := f.Inserted()
	n := int(min(inserted, uint64(math.MaxInt)))
	return Stats{
		Size:        f.size,
		HashCount:   len(f.seeds),
		Algorithm:   AlgorithmName(f.alg),
		Inserted:    inserted,
		SetBits:     set,
		FillRatio:   fill,
		EstimatedFP: math.Pow(fill, float64(len(f.seeds))),
		ExpectedFP:  ExpectedFalsePositiveRate(f.size, len(f.seeds), n),
	}
}
