// Package pixel provides image loading and pixel buffer management.
//
// This package decodes PNG, JPEG, GIF, BMP and TIFF files into flat
// 8-bit pixel buffers with a caller-chosen channel count, the layout
// GPU upload paths and software rasterizers expect.
//
// Basic usage:
//
//	img, err := pixel.Load("assets/hero.png", 4)
//	if err != nil {
//		return err
//	}
//	defer img.Free()
//
// Buffers are row-major with no padding: the pixel at (x, y) starts at
// Data[(y*Width+x)*Channels]. Channel layouts:
//   - 1: gray
//   - 2: gray, alpha
//   - 3: red, green, blue
//   - 4: red, green, blue, alpha (non-premultiplied)
//
// Every decoded buffer is tracked until released with Free. Shutdown
// reports buffers that were never released, which usually points at a
// leak in the caller.
package pixel
