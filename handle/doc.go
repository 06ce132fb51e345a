// Package handle implements compact resource handles: a slot index and a
// reuse cycle packed into one unsigned integer.
//
// A handle refers to a slot in consumer-owned storage. The cycle counter
// distinguishes the current occupant of a slot from earlier ones, so code
// holding a handle to a freed-and-reused slot can detect the mismatch
// instead of silently touching the wrong resource.
//
// # Layout
//
// A Scheme fixes how the word's bits split between the two fields. The
// index occupies the low bits, the cycle the high bits:
//
//	var Textures = handle.Must[uint32, Texture](22, 10)
//
//	h := Textures.Pack(81, 3)
//	h.Bits()           // 0x00C00051
//	Textures.Index(h)  // 81
//	Textures.Cycle(h)  // 3
//	Textures.Format(h) // "Texture[81#3]"
//
// Both field widths must be at least 1 and together they must fill the
// word exactly; Must panics at program start otherwise.
//
// # Tags
//
// The second type parameter is a phantom tag carried only in the type:
//
//	type Texture struct{}
//	type Buffer struct{}
//
//	var th handle.Handle[uint32, Texture]
//	var bh handle.Handle[uint32, Buffer]
//	th = bh // compile error
//
// The tag costs no storage. A handle is exactly as large as its word.
//
// # Nil
//
// The zero value is the nil handle. Index 0 never names a live resource,
// so a slot table's entry 0 stays reserved and MaxCount equals MaxIndex.
//
// # Addressable form
//
// Unpack produces the index and cycle as separate struct fields for code
// that reads or mutates them independently; Compact reverses it:
//
//	a := Textures.Unpack(h)
//	a.Cycle++
//	h2 := Textures.Compact(a)
//
// # Wide words
//
// U128 and U256 provide 128- and 256-bit words for handle layouts wider
// than any native Go integer. The handlegen tool emits concrete handle
// types over them; see the handlegen package.
package handle
