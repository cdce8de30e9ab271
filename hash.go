// Base hash algorithms for element signatures.
//
// Every filter hashes an element's signature exactly once into a 64-bit
// base value. Four algorithms are supported, selectable via
// Config.HashAlgorithm. None of them is required to be cryptographic.
package bloom

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants, accepted in Config.HashAlgorithm.
// Zero selects AlgXXHash3.
const (
	AlgXXHash3 = 1 // xxh3 64-bit; used unless configured otherwise
	AlgFNV1a   = 2 // FNV-1a 64-bit from the standard library
	AlgBlake2b = 3 // first 8 bytes of BLAKE2b, slowest but evenly spread
	AlgMurmur3 = 4 // murmur3 64-bit, interchangeable with most LSM filters
)

// hash returns the 64-bit base hash of sig under alg.
// Callers validate alg first; an unknown algorithm hashes to zero.
func hash(sig []byte, alg int) uint64 {
	switch alg {
	case AlgXXHash3:
		return xxh3.Hash(sig)
	case AlgFNV1a:
		f := fnv.New64a()
		f.Write(sig) // never errors
		return f.Sum64()
	case AlgBlake2b:
		// A 64-bit digest read big-endian; New only fails on bad sizes.
		d, _ := blake2b.New(8, nil)
		d.Write(sig)
		var sum [8]byte
		return binary.BigEndian.Uint64(d.Sum(sum[:0]))
	case AlgMurmur3:
		return murmur3.Sum64(sig)
	default:
		return 0
	}
}

// validAlgorithm reports whether alg names a supported hash.
func validAlgorithm(alg int) bool {
	return alg >= AlgXXHash3 && alg <= AlgMurmur3
}

// AlgorithmName returns the short name used by the CLI and in Stats.
func AlgorithmName(alg int) string {
	switch alg {
	case AlgXXHash3:
		return "xxh3"
	case AlgFNV1a:
		return "fnv1a"
	case AlgBlake2b:
		return "blake2b"
	case AlgMurmur3:
		return "murmur3"
	default:
		return ""
	}
}

// ParseAlgorithm maps a short name back to its constant.
// It returns 0 for unknown names.
func ParseAlgorithm(name string) int {
	for alg := AlgXXHash3; alg <= AlgMurmur3; alg++ {
		if AlgorithmName(alg) == name {
			return alg
		}
	}
	return 0
}
