package handle

import (
	"fmt"
	"math/bits"
	"reflect"

	"github.com/giusdp/gamekit/errors"
)

// Scheme fixes how the bits of a Handle[W, T] split between the index and
// the cycle. The split is validated once, at construction; every Pack and
// Unpack after that is a shift and a mask.
//
// The zero Scheme packs nothing useful. Construct with New, or Must for
// package-level variables.
type Scheme[W Word, T any] struct {
	indexBits uint
	cycleBits uint
	indexMask W
	cycleMask W
}

// New builds a Scheme that splits W into an index field of indexBits low
// bits and a cycle field of cycleBits high bits. Both widths must be at
// least 1 and together they must fill W exactly.
func New[W Word, T any](indexBits, cycleBits uint) (Scheme[W, T], error) {
	if indexBits == 0 {
		return Scheme[W, T]{}, errors.ZeroBits(errors.PhaseConfig, "index")
	}
	if cycleBits == 0 {
		return Scheme[W, T]{}, errors.ZeroBits(errors.PhaseConfig, "cycle")
	}
	if w := wordWidth[W](); indexBits+cycleBits != w {
		return Scheme[W, T]{}, errors.WidthMismatch(errors.PhaseConfig, indexBits, cycleBits, w)
	}
	return Scheme[W, T]{
		indexBits: indexBits,
		cycleBits: cycleBits,
		indexMask: ones[W](indexBits),
		cycleMask: ones[W](cycleBits),
	}, nil
}

// Must is New for package-level initialization: it panics if the bit split
// is invalid, so a misconfigured handle layout fails at program start.
func Must[W Word, T any](indexBits, cycleBits uint) Scheme[W, T] {
	s, err := New[W, T](indexBits, cycleBits)
	if err != nil {
		panic(err)
	}
	return s
}

// IndexBits returns the width of the index field.
func (s Scheme[W, T]) IndexBits() uint {
	return s.indexBits
}

// CycleBits returns the width of the cycle field.
func (s Scheme[W, T]) CycleBits() uint {
	return s.cycleBits
}

// MaxIndex returns the largest representable index, the all-ones index
// field.
func (s Scheme[W, T]) MaxIndex() W {
	return s.indexMask
}

// MaxCycle returns the largest representable cycle.
func (s Scheme[W, T]) MaxCycle() W {
	return s.cycleMask
}

// MaxCount returns the number of usable slots. Index 0 is reserved for the
// nil handle, so usable indices run from 1 to MaxIndex.
func (s Scheme[W, T]) MaxCount() W {
	return s.indexMask
}

// Nil returns the nil handle.
func (s Scheme[W, T]) Nil() Handle[W, T] {
	return Handle[W, T]{}
}

// Pack builds a handle from an index and a cycle. Both arguments are masked
// to their field widths, so a cycle counter may grow monotonically and wrap
// without a bounds check at the call site.
func (s Scheme[W, T]) Pack(index, cycle W) Handle[W, T] {
	return Handle[W, T]{bits: (cycle&s.cycleMask)<<s.indexBits | index&s.indexMask}
}

// Unpack splits h into its addressable form.
func (s Scheme[W, T]) Unpack(h Handle[W, T]) Addressable[W, T] {
	return Addressable[W, T]{
		Index: h.bits & s.indexMask,
		Cycle: h.bits >> s.indexBits,
	}
}

// Compact packs a back into handle form. Each field is masked to its
// width, so Compact(Unpack(h)) == h for every handle of the scheme.
func (s Scheme[W, T]) Compact(a Addressable[W, T]) Handle[W, T] {
	return s.Pack(a.Index, a.Cycle)
}

// Index extracts the index field of h.
func (s Scheme[W, T]) Index(h Handle[W, T]) W {
	return h.bits & s.indexMask
}

// Cycle extracts the cycle field of h.
func (s Scheme[W, T]) Cycle(h Handle[W, T]) W {
	return h.bits >> s.indexBits
}

// Format renders h for diagnostics as Tag[index#cycle], where Tag is the
// name of the tag type:
//
//	Texture[81#3]
func (s Scheme[W, T]) Format(h Handle[W, T]) string {
	return fmt.Sprintf("%s[%d#%d]", tagName[T](), s.Index(h), s.Cycle(h))
}

// tagName resolves the display name of a tag type. Unnamed tags fall back
// to their type string.
func tagName[T any]() string {
	t := reflect.TypeFor[T]()
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// wordWidth returns the bit width of W.
func wordWidth[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// ones returns a word with the n low bits set.
func ones[W Word](n uint) W {
	return W(1)<<n - 1
}
