// Package handlegen generates concrete packed-handle types as Go source.
//
// The generic handle.Scheme validates its bit split at program start. For
// code that wants the split checked even earlier, handlegen moves the check
// to the build: a go:generate line produces a fixed-layout handle type, and
// an invalid layout fails generation instead of producing code.
//
// # Describing types
//
// A generation unit is a File: a target package plus one Type per handle:
//
//	f := handlegen.File{
//	    Package: "gfx",
//	    Types: []handlegen.Type{
//	        {Name: "Texture", IndexBits: 22, CycleBits: 10},
//	        {Name: "Buffer", IndexBits: 12, CycleBits: 4},
//	    },
//	}
//	src, err := handlegen.Generate(f)
//
// Index and cycle widths must each be at least 1 and must total 8, 16, 32,
// 64, 128 or 256. Totals up to 64 pack into the matching native uint;
// wider totals pack into handle.U128 or handle.U256.
//
// # Generated API
//
// For a type named Texture the output declares TextureHandle with
// PackTextureHandle, Index, Cycle, IsNil, Bits and String, the constants
// TextureHandleIndexBits, TextureHandleCycleBits, MaxTextureHandleIndex,
// MaxTextureHandleCycle and MaxTextureHandleCount, the NilTextureHandle
// zero handle, and TextureHandleParts, the addressable form whose fields
// use the smallest unsigned type that fits each width.
//
// Output is deterministic and gofmt-clean; types appear in declaration
// order.
//
// # Manifests
//
// LoadManifest reads the same description from TOML, for projects that
// declare all their handle types in one place:
//
//	package = "gfx"
//
//	[[type]]
//	name = "Texture"
//	index_bits = 22
//	cycle_bits = 10
//
// The handlegen command wraps this package; see cmd/handlegen.
package handlegen
