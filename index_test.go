// Index derivation tests.
//
// Every seed must map to a bit inside the array for every possible base
// hash, including values near 2^64 where a naive base+seed would wrap.
package bloom

import (
	"math"
	"math/rand/v2"
	"testing"
)

// TestIndexBound checks random bases, steps and sizes, plus the extreme
// values, and requires every index to fall in [0, size).
func TestIndexBound(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	sizes := []uint64{1, 2, 7, 10, 64, 100000, math.MaxUint64}
	for range 2000 {
		sizes = append(sizes[:7], r.Uint64N(1<<40)+1)
		base := r.Uint64()
		for _, size := range sizes {
			for _, d := range []Derivation{DeriveDouble, DeriveLinear} {
				step := d.step(base)
				for seed := uint64(0); seed < MaxHashCount; seed++ {
					if i := index(base, step, seed, size); i >= size {
						t.Fatalf("index(%x, %x, %d, %d) = %d out of range", base, step, seed, size, i)
					}
				}
			}
		}
	}

	for _, base := range []uint64{0, 1, math.MaxUint64, math.MaxUint64 - 1} {
		for seed := uint64(0); seed < MaxHashCount; seed++ {
			if i := index(base, math.MaxUint64, seed, 100000); i >= 100000 {
				t.Fatalf("index out of range: %d", i)
			}
		}
	}
}

// TestIndexLinearNoWrap verifies that the linear family is exact modular
// arithmetic: base+seed evaluated without wrapping at 2^64.
func TestIndexLinearNoWrap(t *testing.T) {
	base := uint64(math.MaxUint64) // 2^64 - 1
	size := uint64(10)
	// 2^64 - 1 = 18446744073709551615, which is 5 mod 10.
	for seed := uint64(0); seed < 5; seed++ {
		want := (5 + seed) % size
		if got := index(base, 1, seed, size); got != want {
			t.Errorf("seed %d: index = %d, want %d", seed, got, want)
		}
	}
}

// TestIndexSeedZeroIsBase verifies that seed 0 always selects base mod
// size, whatever the step.
func TestIndexSeedZeroIsBase(t *testing.T) {
	for _, base := range []uint64{0, 12345, math.MaxUint64} {
		for _, step := range []uint64{1, 3, math.MaxUint64} {
			if got, want := index(base, step, 0, 1000), base%1000; got != want {
				t.Errorf("index(%d, %d, 0, 1000) = %d, want %d", base, step, got, want)
			}
		}
	}
}

// TestDerivationStep verifies that double hashing always uses an odd
// step, and linear always uses 1.
func TestDerivationStep(t *testing.T) {
	for _, base := range []uint64{0, 1, 2, 0xdeadbeef, math.MaxUint64} {
		if s := DeriveDouble.step(base); s%2 == 0 {
			t.Errorf("DeriveDouble.step(%x) = %x, want odd", base, s)
		}
		if s := DeriveLinear.step(base); s != 1 {
			t.Errorf("DeriveLinear.step(%x) = %d, want 1", base, s)
		}
	}
}

// TestLinearBitsAreAdjacent verifies the shape of the linear family: an
// element's k bits are consecutive, wrapping at the end of the array.
func TestLinearBitsAreAdjacent(t *testing.T) {
	f, err := NewString(1000, 4, Config{Derivation: DeriveLinear})
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	mustAdd(t, f, "apple")

	start := hash([]byte("apple"), AlgXXHash3) % 1000
	bits := f.Bits()
	for seed := uint64(0); seed < 4; seed++ {
		if !bits.Test(uint((start + seed) % 1000)) {
			t.Errorf("bit %d not set", (start+seed)%1000)
		}
	}
	if bits.Count() != 4 {
		t.Errorf("Count = %d, want 4", bits.Count())
	}
}
