// Element signatures.
//
// A Signer is the "hashable" capability a filter needs from its element
// type: a deterministic byte signature for every value, where equal values
// give equal bytes. Absent values (nil pointers, nil slices, nil
// interfaces) have no signature and are rejected with ErrUnhashable rather
// than being hashed as if they were empty.
package bloom

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// Signer returns the byte signature hashed for item.
type Signer[T any] func(item T) ([]byte, error)

// Hashable is implemented by element types that know their own signature.
type Hashable interface {
	BloomKey() []byte
}

// String signs a string by its bytes. The empty string is a valid element.
func String() Signer[string] {
	return func(s string) ([]byte, error) {
		return []byte(s), nil
	}
}

// Bytes signs a byte slice by its contents. A nil slice is treated as an
// absent value; an empty non-nil slice is a valid element.
func Bytes() Signer[[]byte] {
	return func(b []byte) ([]byte, error) {
		if b == nil {
			return nil, ErrUnhashable
		}
		return b, nil
	}
}

// Key signs a Hashable element by calling BloomKey. Nil elements are
// rejected before the method is called.
func Key[T Hashable]() Signer[T] {
	return func(item T) ([]byte, error) {
		if isNil(item) {
			return nil, ErrUnhashable
		}
		return item.BloomKey(), nil
	}
}

// JSON signs any value by its JSON encoding. Struct fields are encoded in
// declaration order and map keys are sorted, so equal values produce equal
// signatures. Values that cannot be encoded (channels, funcs, cycles) are
// unhashable.
func JSON[T any]() Signer[T] {
	return func(item T) ([]byte, error) {
		if isNil(item) {
			return nil, ErrUnhashable
		}
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrUnhashable, err)
		}
		return data, nil
	}
}

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
