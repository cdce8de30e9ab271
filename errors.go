// Package bloom provides a fixed-size Bloom filter: a probabilistic set
// that answers "definitely absent" or "maybe present" in constant time and
// constant space, regardless of how many elements have been added.
//
// A filter is built once with an explicit bit count and hash count and
// never grows or shrinks. Its hash family is a list of integer seeds fed to
// one shared index routine over a single 64-bit base hash of the element,
// so adding or testing an element hashes it exactly once. Bits only ever go
// from 0 to 1: there is no Remove and no Reset.
//
// Elements are turned into bytes by a Signer. Equal elements must produce
// equal signatures; the quality of the base hash over those signatures
// decides the real false-positive rate, while the no-false-negatives
// guarantee holds for any deterministic signer.
package bloom

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to tell
// a bad construction (ErrInvalidConfig) from a bad element (ErrUnhashable).
var (
	ErrInvalidConfig = errors.New("invalid filter configuration")
	ErrUnhashable    = errors.New("element is nil or cannot be hashed")
)
