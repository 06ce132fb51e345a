// Package gamekit provides packed resource handles and image loading
// utilities for game runtimes.
//
// Resources in a game engine are addressed by small, copyable handles
// instead of pointers: an index into caller-owned storage plus a reuse
// cycle that invalidates the handle when the slot is recycled. This
// library supplies the handle value types, a generator that emits
// concrete typed handle APIs, and an image loader that decodes assets
// into tracked flat pixel buffers.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	gamekit/             Root package documentation
//	├── handle/          Generic index+cycle handle core and wide words (U128, U256)
//	├── handlegen/       Generator library emitting concrete typed handle source
//	├── cmd/handlegen/   CLI and interactive form around the generator
//	├── pixel/           Image decoding into tracked, poolable pixel buffers
//	├── errors/          Structured error types shared across packages
//	├── profile/         pprof harnesses for the packing and decoding hot paths
//	└── examples/        Runnable samples
//
// # Quick Start
//
// Declare handle types in a TOML manifest and generate their source:
//
//	package = "gfx"
//
//	[[type]]
//	name = "Texture"
//	index_bits = 22
//	cycle_bits = 10
//
//	//go:generate go run github.com/giusdp/gamekit/cmd/handlegen -manifest handles.toml -o handles_gen.go
//
// The generated API packs, unpacks and formats validated handles:
//
//	h := gfx.PackTextureHandle(slot, cycle)
//	if h.IsNil() {
//	    return
//	}
//	fmt.Println(h) // Texture[41#3]
//
// Load image assets into flat buffers and release them when done:
//
//	img, err := pixel.Load("hero.png", 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer img.Free()
//	upload(img.Data, img.Width, img.Height)
//
// # Handles
//
// A handle packs (cycle << indexBits) | index into the smallest unsigned
// word that fits the declared layout: 8, 16, 32 or 64 bits natively, 128
// or 256 bits through the handle.U128 and handle.U256 words. The all-zero
// pattern is the nil handle, so index 0 never addresses a live slot.
// Handles compare with ==: equal bits mean same slot, same cycle. Stale
// detection is the consumer's comparison of a handle's cycle against the
// slot's current cycle; this library deliberately ships no slot container.
//
// Layouts are validated when a scheme or generated type is constructed.
// A zero-width field or a total outside the supported widths fails
// generation (or Scheme construction), never a later pack call: pack and
// unpack themselves are total and mask their inputs to the field widths.
//
// # Images
//
// The pixel package decodes PNG, JPEG, GIF, BMP and TIFF into row-major
// 8-bit buffers with a forced or source-derived channel count. Every
// decoded buffer is tracked in a mutex-guarded ledger until freed;
// buffers recycle through a size-capped pool, and Shutdown reports
// anything still outstanding.
//
// # Thread Safety
//
// Handles and schemes are immutable values, safe to copy and share. The
// pixel ledger is safe for concurrent use; an individual *pixel.Image is
// not, and belongs to one goroutine at a time.
package gamekit
