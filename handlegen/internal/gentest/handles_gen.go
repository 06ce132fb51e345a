// Code generated by handlegen. DO NOT EDIT.

package gentest

import (
	"fmt"

	"github.com/giusdp/gamekit/handle"
)

// SpriteHandle identifies a Sprite resource slot: a 22-bit
// slot index and a 10-bit reuse cycle packed into a uint32.
//
// Sprites are addressed through the scene renderer.
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type SpriteHandle struct {
	bits uint32
}

const (
	// SpriteHandleIndexBits is the width of the index field.
	SpriteHandleIndexBits = 22
	// SpriteHandleCycleBits is the width of the cycle field.
	SpriteHandleCycleBits = 10

	// MaxSpriteHandleIndex is the largest representable slot index.
	MaxSpriteHandleIndex = 1<<SpriteHandleIndexBits - 1
	// MaxSpriteHandleCycle is the largest representable cycle.
	MaxSpriteHandleCycle = 1<<SpriteHandleCycleBits - 1
	// MaxSpriteHandleCount is the number of usable slots; index 0 is
	// reserved for the nil handle.
	MaxSpriteHandleCount = MaxSpriteHandleIndex
)

// NilSpriteHandle is the "no Sprite" handle, the all-zero pattern.
var NilSpriteHandle = SpriteHandle{}

// PackSpriteHandle builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func PackSpriteHandle(index uint32, cycle uint16) SpriteHandle {
	return SpriteHandle{bits: (uint32(cycle)&MaxSpriteHandleCycle)<<SpriteHandleIndexBits | uint32(index)&MaxSpriteHandleIndex}
}

// SpriteHandleFromBits reconstitutes a handle from its packed bits.
func SpriteHandleFromBits(bits uint32) SpriteHandle {
	return SpriteHandle{bits: bits}
}

// Bits returns the packed representation.
func (h SpriteHandle) Bits() uint32 {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h SpriteHandle) IsNil() bool {
	return h.bits == 0
}

// Index returns the slot index carried by h.
func (h SpriteHandle) Index() uint32 {
	return uint32(h.bits & MaxSpriteHandleIndex)
}

// Cycle returns the reuse cycle carried by h.
func (h SpriteHandle) Cycle() uint16 {
	return uint16(h.bits >> SpriteHandleIndexBits)
}

// String renders h as Sprite[index#cycle].
func (h SpriteHandle) String() string {
	return fmt.Sprintf("Sprite[%d#%d]", h.Index(), h.Cycle())
}

// SpriteHandleParts is the addressable form of SpriteHandle: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type SpriteHandleParts struct {
	Index uint32
	Cycle uint16
}

// Addressable unpacks h into separately addressable fields.
func (h SpriteHandle) Addressable() SpriteHandleParts {
	return SpriteHandleParts{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p SpriteHandleParts) Handle() SpriteHandle {
	return PackSpriteHandle(p.Index, p.Cycle)
}

// TileHandle identifies a Tile resource slot: a 12-bit
// slot index and a 4-bit reuse cycle packed into a uint16.
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type TileHandle struct {
	bits uint16
}

const (
	// TileHandleIndexBits is the width of the index field.
	TileHandleIndexBits = 12
	// TileHandleCycleBits is the width of the cycle field.
	TileHandleCycleBits = 4

	// MaxTileHandleIndex is the largest representable slot index.
	MaxTileHandleIndex = 1<<TileHandleIndexBits - 1
	// MaxTileHandleCycle is the largest representable cycle.
	MaxTileHandleCycle = 1<<TileHandleCycleBits - 1
	// MaxTileHandleCount is the number of usable slots; index 0 is
	// reserved for the nil handle.
	MaxTileHandleCount = MaxTileHandleIndex
)

// NilTileHandle is the "no Tile" handle, the all-zero pattern.
var NilTileHandle = TileHandle{}

// PackTileHandle builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func PackTileHandle(index uint16, cycle uint8) TileHandle {
	return TileHandle{bits: (uint16(cycle)&MaxTileHandleCycle)<<TileHandleIndexBits | uint16(index)&MaxTileHandleIndex}
}

// TileHandleFromBits reconstitutes a handle from its packed bits.
func TileHandleFromBits(bits uint16) TileHandle {
	return TileHandle{bits: bits}
}

// Bits returns the packed representation.
func (h TileHandle) Bits() uint16 {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h TileHandle) IsNil() bool {
	return h.bits == 0
}

// Index returns the slot index carried by h.
func (h TileHandle) Index() uint16 {
	return uint16(h.bits & MaxTileHandleIndex)
}

// Cycle returns the reuse cycle carried by h.
func (h TileHandle) Cycle() uint8 {
	return uint8(h.bits >> TileHandleIndexBits)
}

// String renders h as Tile[index#cycle].
func (h TileHandle) String() string {
	return fmt.Sprintf("Tile[%d#%d]", h.Index(), h.Cycle())
}

// TileHandleParts is the addressable form of TileHandle: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type TileHandleParts struct {
	Index uint16
	Cycle uint8
}

// Addressable unpacks h into separately addressable fields.
func (h TileHandle) Addressable() TileHandleParts {
	return TileHandleParts{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p TileHandleParts) Handle() TileHandle {
	return PackTileHandle(p.Index, p.Cycle)
}

// NibHandle identifies a Nib resource slot: a 4-bit
// slot index and a 4-bit reuse cycle packed into a uint8.
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type NibHandle struct {
	bits uint8
}

const (
	// NibHandleIndexBits is the width of the index field.
	NibHandleIndexBits = 4
	// NibHandleCycleBits is the width of the cycle field.
	NibHandleCycleBits = 4

	// MaxNibHandleIndex is the largest representable slot index.
	MaxNibHandleIndex = 1<<NibHandleIndexBits - 1
	// MaxNibHandleCycle is the largest representable cycle.
	MaxNibHandleCycle = 1<<NibHandleCycleBits - 1
	// MaxNibHandleCount is the number of usable slots; index 0 is
	// reserved for the nil handle.
	MaxNibHandleCount = MaxNibHandleIndex
)

// NilNibHandle is the "no Nib" handle, the all-zero pattern.
var NilNibHandle = NibHandle{}

// PackNibHandle builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func PackNibHandle(index uint8, cycle uint8) NibHandle {
	return NibHandle{bits: (uint8(cycle)&MaxNibHandleCycle)<<NibHandleIndexBits | uint8(index)&MaxNibHandleIndex}
}

// NibHandleFromBits reconstitutes a handle from its packed bits.
func NibHandleFromBits(bits uint8) NibHandle {
	return NibHandle{bits: bits}
}

// Bits returns the packed representation.
func (h NibHandle) Bits() uint8 {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h NibHandle) IsNil() bool {
	return h.bits == 0
}

// Index returns the slot index carried by h.
func (h NibHandle) Index() uint8 {
	return uint8(h.bits & MaxNibHandleIndex)
}

// Cycle returns the reuse cycle carried by h.
func (h NibHandle) Cycle() uint8 {
	return uint8(h.bits >> NibHandleIndexBits)
}

// String renders h as Nib[index#cycle].
func (h NibHandle) String() string {
	return fmt.Sprintf("Nib[%d#%d]", h.Index(), h.Cycle())
}

// NibHandleParts is the addressable form of NibHandle: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type NibHandleParts struct {
	Index uint8
	Cycle uint8
}

// Addressable unpacks h into separately addressable fields.
func (h NibHandle) Addressable() NibHandleParts {
	return NibHandleParts{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p NibHandleParts) Handle() NibHandle {
	return PackNibHandle(p.Index, p.Cycle)
}

// AtlasHandle identifies a Atlas resource slot: a 96-bit
// slot index and a 32-bit reuse cycle packed into a handle.U128.
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type AtlasHandle struct {
	bits handle.U128
}

const (
	// AtlasHandleIndexBits is the width of the index field.
	AtlasHandleIndexBits = 96
	// AtlasHandleCycleBits is the width of the cycle field.
	AtlasHandleCycleBits = 32
)

var (
	// NilAtlasHandle is the "no Atlas" handle, the all-zero pattern.
	NilAtlasHandle = AtlasHandle{}

	// MaxAtlasHandleIndex is the largest representable slot index.
	MaxAtlasHandleIndex = handle.OnesU128(AtlasHandleIndexBits)

	// MaxAtlasHandleCycle is the largest representable cycle.
	MaxAtlasHandleCycle uint32 = 1<<AtlasHandleCycleBits - 1

	// MaxAtlasHandleCount is the number of usable slots; index 0 is
	// reserved for the nil handle.
	MaxAtlasHandleCount = MaxAtlasHandleIndex

	atlasHandleIndexMask = handle.OnesU128(AtlasHandleIndexBits) // index-field mask
)

// PackAtlasHandle builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func PackAtlasHandle(index handle.U128, cycle uint32) AtlasHandle {
	return AtlasHandle{bits: handle.U128FromUint64(uint64(cycle & MaxAtlasHandleCycle)).Shl(AtlasHandleIndexBits).Or(index.And(atlasHandleIndexMask))}
}

// AtlasHandleFromBits reconstitutes a handle from its packed bits.
func AtlasHandleFromBits(bits handle.U128) AtlasHandle {
	return AtlasHandle{bits: bits}
}

// Bits returns the packed representation.
func (h AtlasHandle) Bits() handle.U128 {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h AtlasHandle) IsNil() bool {
	return h.bits.IsZero()
}

// Index returns the slot index carried by h.
func (h AtlasHandle) Index() handle.U128 {
	return h.bits.And(atlasHandleIndexMask)
}

// Cycle returns the reuse cycle carried by h.
func (h AtlasHandle) Cycle() uint32 {
	return uint32(h.bits.Shr(AtlasHandleIndexBits).Uint64())
}

// String renders h as Atlas[index#cycle].
func (h AtlasHandle) String() string {
	return fmt.Sprintf("Atlas[%v#%v]", h.Index(), h.Cycle())
}

// AtlasHandleParts is the addressable form of AtlasHandle: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type AtlasHandleParts struct {
	Index handle.U128
	Cycle uint32
}

// Addressable unpacks h into separately addressable fields.
func (h AtlasHandle) Addressable() AtlasHandleParts {
	return AtlasHandleParts{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p AtlasHandleParts) Handle() AtlasHandle {
	return PackAtlasHandle(p.Index, p.Cycle)
}

// MegaHandle identifies a Mega resource slot: a 160-bit
// slot index and a 96-bit reuse cycle packed into a handle.U256.
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type MegaHandle struct {
	bits handle.U256
}

const (
	// MegaHandleIndexBits is the width of the index field.
	MegaHandleIndexBits = 160
	// MegaHandleCycleBits is the width of the cycle field.
	MegaHandleCycleBits = 96
)

var (
	// NilMegaHandle is the "no Mega" handle, the all-zero pattern.
	NilMegaHandle = MegaHandle{}

	// MaxMegaHandleIndex is the largest representable slot index.
	MaxMegaHandleIndex = handle.OnesU256(MegaHandleIndexBits)

	// MaxMegaHandleCycle is the largest representable cycle.
	MaxMegaHandleCycle = handle.OnesU128(MegaHandleCycleBits)

	// MaxMegaHandleCount is the number of usable slots; index 0 is
	// reserved for the nil handle.
	MaxMegaHandleCount = MaxMegaHandleIndex

	megaHandleIndexMask = handle.OnesU256(MegaHandleIndexBits) // index-field mask
)

// PackMegaHandle builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func PackMegaHandle(index handle.U256, cycle handle.U128) MegaHandle {
	return MegaHandle{bits: handle.U256FromU128(cycle.And(MaxMegaHandleCycle)).Shl(MegaHandleIndexBits).Or(index.And(megaHandleIndexMask))}
}

// MegaHandleFromBits reconstitutes a handle from its packed bits.
func MegaHandleFromBits(bits handle.U256) MegaHandle {
	return MegaHandle{bits: bits}
}

// Bits returns the packed representation.
func (h MegaHandle) Bits() handle.U256 {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h MegaHandle) IsNil() bool {
	return h.bits.IsZero()
}

// Index returns the slot index carried by h.
func (h MegaHandle) Index() handle.U256 {
	return h.bits.And(megaHandleIndexMask)
}

// Cycle returns the reuse cycle carried by h.
func (h MegaHandle) Cycle() handle.U128 {
	return h.bits.Shr(MegaHandleIndexBits).U128()
}

// String renders h as Mega[index#cycle].
func (h MegaHandle) String() string {
	return fmt.Sprintf("Mega[%v#%v]", h.Index(), h.Cycle())
}

// MegaHandleParts is the addressable form of MegaHandle: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type MegaHandleParts struct {
	Index handle.U256
	Cycle handle.U128
}

// Addressable unpacks h into separately addressable fields.
func (h MegaHandle) Addressable() MegaHandleParts {
	return MegaHandleParts{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p MegaHandleParts) Handle() MegaHandle {
	return PackMegaHandle(p.Index, p.Cycle)
}
