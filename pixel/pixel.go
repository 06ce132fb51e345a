package pixel

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/giusdp/gamekit/errors"
)

// Image is a decoded picture as a flat 8-bit pixel buffer.
//
// Data is row-major with Width*Channels bytes per row and no padding.
// Channels is the layout of Data. ChannelsInFile is the channel count
// the source stored, which differs when the decode forced a conversion.
type Image struct {
	Data           []byte
	Width          int
	Height         int
	Channels       int
	ChannelsInFile int
}

// Load decodes the image file at path into a flat pixel buffer.
// See Decode for the meaning of forcedChannels.
func Load(path string, forcedChannels int) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	defer f.Close()

	br := getReader(f)
	defer putReader(br)

	img, err := Decode(br, forcedChannels)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.File == "" {
			e.File = path
		}
		return nil, err
	}

	Logger().Debug("decoded image",
		zap.String("path", path),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels))
	return img, nil
}

// Decode reads an encoded image from r and converts it into a flat
// pixel buffer. forcedChannels selects the layout of the result: 1
// through 4 force a conversion, 0 keeps the source layout. The caller
// owns the returned buffer and must release it with Free.
func Decode(r io.Reader, forcedChannels int) (*Image, error) {
	if forcedChannels < 0 || forcedChannels > 4 {
		return nil, errors.InvalidChannels(errors.PhaseDecode, forcedChannels)
	}
	src, _, err := image.Decode(r)
	if err == image.ErrFormat {
		return nil, errors.UnknownFormat("", err)
	}
	if err != nil {
		return nil, errors.DecodeFailed("", err)
	}
	return fromImage(src, forcedChannels, "")
}

// fromImage converts a decoded standard library image into a tracked
// pixel buffer with the requested channel count (0 keeps the source's).
func fromImage(src image.Image, forcedChannels int, file string) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.EmptyImage(file)
	}

	inFile := sourceChannels(src)
	channels := forcedChannels
	if channels == 0 {
		channels = inFile
	}

	data := getPixelBuf(w * h * channels)
	fillPixels(data, src, channels)

	img := &Image{
		Data:           data,
		Width:          w,
		Height:         h,
		Channels:       channels,
		ChannelsInFile: inFile,
	}
	buffers.track(img)
	return img, nil
}

// sourceChannels reports the channel count implied by the decoded
// color model. The standard decoders surface gray+alpha files as
// NRGBA, so two-channel sources report four.
func sourceChannels(src image.Image) int {
	switch s := src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.RGBA, *image.RGBA64:
		// The standard decoders produce premultiplied RGBA only for
		// alpha-less sources: PNG color type 2, 24-bit BMP, TIFF
		// without an alpha channel.
		return 3
	case *image.Paletted:
		return paletteChannels(s.Palette)
	default:
		return 4
	}
}

func paletteChannels(p color.Palette) int {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xFFFF {
			return 4
		}
	}
	return 3
}

// fillPixels writes src into dst using the given channel layout.
// dst must hold exactly Dx*Dy*channels bytes.
func fillPixels(dst []byte, src image.Image, channels int) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch s := src.(type) {
	case *image.NRGBA:
		if channels == 4 {
			copyRows(dst, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], w*4, s.Stride, h)
			return
		}
	case *image.Gray:
		if channels == 1 {
			copyRows(dst, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], w, s.Stride, h)
			return
		}
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			switch channels {
			case 1:
				dst[i] = luminance(c)
			case 2:
				dst[i] = luminance(c)
				dst[i+1] = c.A
			case 3:
				dst[i] = c.R
				dst[i+1] = c.G
				dst[i+2] = c.B
			case 4:
				dst[i] = c.R
				dst[i+1] = c.G
				dst[i+2] = c.B
				dst[i+3] = c.A
			}
			i += channels
		}
	}
}

func copyRows(dst, src []byte, rowBytes, stride, rows int) {
	if stride == rowBytes {
		copy(dst, src[:rowBytes*rows])
		return
	}
	for y := 0; y < rows; y++ {
		copy(dst[y*rowBytes:(y+1)*rowBytes], src[y*stride:y*stride+rowBytes])
	}
}

// luminance converts a color to gray using the Rec. 601 weights, the
// same formula the standard library's gray model applies.
func luminance(c color.NRGBA) uint8 {
	y := 19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15
	return uint8(y >> 16)
}
