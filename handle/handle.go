package handle

// Word is the set of unsigned integer types that can back a packed handle.
// Widths above 64 bits have no native Go integer; U128 and U256 cover those
// for generated handle types.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Handle is a compact reference to a slot in consumer-owned storage: a slot
// index and a reuse cycle packed into a single unsigned integer. How the
// bits split between the two fields is fixed by a Scheme.
//
// The tag type T is phantom: it occupies no storage and exists only to make
// handles of different resource kinds distinct types.
//
// The zero value is the nil handle. Handles are comparable; two handles are
// equal exactly when their packed bits are equal.
type Handle[W Word, T any] struct {
	bits W
}

// FromBits reconstitutes a handle from its packed representation, the value
// a previous call to Bits returned.
func FromBits[W Word, T any](bits W) Handle[W, T] {
	return Handle[W, T]{bits: bits}
}

// Nil returns the nil handle, the all-zero pattern that refers to nothing.
func Nil[W Word, T any]() Handle[W, T] {
	return Handle[W, T]{}
}

// Bits returns the packed representation, suitable for bulk storage or for
// crossing an ABI boundary.
func (h Handle[W, T]) Bits() W {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h Handle[W, T]) IsNil() bool {
	return h.bits == 0
}

// Addressable is the unpacked form of a Handle: index and cycle in separate
// fields that can be read, written and referenced independently. Both
// fields use the handle's full word width; code generated by handlegen
// instead picks the smallest unsigned type that fits each field.
type Addressable[W Word, T any] struct {
	Index W
	Cycle W
}
