// Fixed-size Bloom filter.
//
// The bit array is packed into 64-bit words, bit i living at bit i%64 of
// word i/64. Add sets bits with an atomic OR per word and MightContain
// reads them with atomic loads, so both may run from many goroutines
// without a lock. A MightContain racing an Add of the same element can
// still see some of its bits unset and report false; bits that are already
// set are never lost.
package bloom

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// MaxHashCount caps the number of hash functions. Beyond this every
// practical filter is saturated long before it is useful.
const MaxHashCount = 64

// Config holds filter configuration options.
type Config struct {
	HashAlgorithm int        // 1=xxHash3, 2=FNV1a, 3=Blake2b, 4=Murmur3
	Derivation    Derivation // 1=double hashing, 2=linear (base+seed)
}

// Filter is a Bloom filter over elements of type T.
type Filter[T any] struct {
	words    []uint64
	size     uint64
	seeds    []uint64
	alg      int
	derive   Derivation
	sign     Signer[T]
	inserted atomic.Uint64
}

// New returns an empty filter of size bits using hashCount hash functions.
// Both must be positive; anything else is ErrInvalidConfig.
func New[T any](size, hashCount int, sign Signer[T], config Config) (*Filter[T], error) {
	// Default config values
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	if config.Derivation == 0 {
		config.Derivation = DeriveDouble
	}

	switch {
	case size <= 0:
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, size)
	case hashCount <= 0:
		return nil, fmt.Errorf("%w: hash count must be positive, got %d", ErrInvalidConfig, hashCount)
	case hashCount > MaxHashCount:
		return nil, fmt.Errorf("%w: hash count %d exceeds %d", ErrInvalidConfig, hashCount, MaxHashCount)
	case sign == nil:
		return nil, fmt.Errorf("%w: nil signer", ErrInvalidConfig)
	case !validAlgorithm(config.HashAlgorithm):
		return nil, fmt.Errorf("%w: unknown hash algorithm %d", ErrInvalidConfig, config.HashAlgorithm)
	case !config.Derivation.valid():
		return nil, fmt.Errorf("%w: unknown derivation %d", ErrInvalidConfig, config.Derivation)
	}

	seeds := make([]uint64, hashCount)
	for i := range seeds {
		seeds[i] = uint64(i)
	}

	m := uint64(size)
	return &Filter[T]{
		words:  make([]uint64, (m+63)/64),
		size:   m,
		seeds:  seeds,
		alg:    config.HashAlgorithm,
		derive: config.Derivation,
		sign:   sign,
	}, nil
}

// NewString returns a filter over strings.
func NewString(size, hashCount int, config Config) (*Filter[string], error) {
	return New(size, hashCount, String(), config)
}

// NewBytes returns a filter over byte slices.
func NewBytes(size, hashCount int, config Config) (*Filter[[]byte], error) {
	return New(size, hashCount, Bytes(), config)
}

// NewWithEstimates sizes a filter for n elements at false-positive rate p.
func NewWithEstimates[T any](n int, p float64, sign Signer[T], config Config) (*Filter[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: expected elements must be positive, got %d", ErrInvalidConfig, n)
	}
	if !(p > 0 && p < 1) {
		return nil, fmt.Errorf("%w: false positive rate must be in (0,1), got %g", ErrInvalidConfig, p)
	}
	m := OptimalSize(n, p)
	if m > math.MaxInt {
		return nil, fmt.Errorf("%w: %d bits overflows int", ErrInvalidConfig, m)
	}
	return New(int(m), min(OptimalHashCount(m, n), MaxHashCount), sign, config)
}

// Add inserts item into the filter. Adding the same item again leaves the
// bits unchanged. A failed Add sets no bits.
func (f *Filter[T]) Add(item T) error {
	base, step, err := f.hashes(item)
	if err != nil {
		return err
	}
	for _, seed := range f.seeds {
		pos := index(base, step, seed, f.size)
		atomic.OrUint64(&f.words[pos/64], 1<<(pos%64))
	}
	f.inserted.Add(1)
	return nil
}

// MightContain returns true if item might be present, false if it
// definitely is not. Any item passed to a completed Add returns true.
func (f *Filter[T]) MightContain(item T) (bool, error) {
	base, step, err := f.hashes(item)
	if err != nil {
		return false, err
	}
	for _, seed := range f.seeds {
		pos := index(base, step, seed, f.size)
		if atomic.LoadUint64(&f.words[pos/64])&(1<<(pos%64)) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// hashes signs item and returns its base hash and seed step.
func (f *Filter[T]) hashes(item T) (base, step uint64, err error) {
	sig, err := f.sign(item)
	if err != nil {
		if errors.Is(err, ErrUnhashable) {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("%w: %w", ErrUnhashable, err)
	}
	if sig == nil {
		return 0, 0, ErrUnhashable
	}
	base = hash(sig, f.alg)
	return base, f.derive.step(base), nil
}

// Size returns the number of bits.
func (f *Filter[T]) Size() uint64 {
	return f.size
}

// HashCount returns the number of hash functions.
func (f *Filter[T]) HashCount() int {
	return len(f.seeds)
}

// Seeds returns a copy of the seed list.
func (f *Filter[T]) Seeds() []uint64 {
	return append([]uint64(nil), f.seeds...)
}

// Algorithm returns the base hash algorithm.
func (f *Filter[T]) Algorithm() int {
	return f.alg
}

// Derivation returns the seed derivation in use.
func (f *Filter[T]) Derivation() Derivation {
	return f.derive
}

// Inserted returns the number of successful Add calls, repeats included.
func (f *Filter[T]) Inserted() uint64 {
	return f.inserted.Load()
}
