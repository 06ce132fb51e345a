package pixel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/giusdp/gamekit/errors"
)

// SavePNG writes the image to path in PNG format.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WriteFailed(errors.PhaseEncode, path, err)
	}

	if err := img.EncodePNG(f); err != nil {
		f.Close()
		if e, ok := err.(*errors.Error); ok && e.File == "" {
			e.File = path
		}
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WriteFailed(errors.PhaseEncode, path, err)
	}

	Logger().Debug("wrote png",
		zap.String("path", path),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))
	return nil
}

// EncodePNG writes the image to w in PNG format.
func (img *Image) EncodePNG(w io.Writer) error {
	src, err := img.view(errors.PhaseEncode)
	if err != nil {
		return err
	}
	if err := png.Encode(w, src); err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindIO, err, "encode png")
	}
	return nil
}

// view wraps the pixel buffer in a standard library image. One and
// four channel buffers alias Data directly. Two and three channel
// layouts have no standard counterpart and are expanded into NRGBA.
func (img *Image) view(phase errors.Phase) (image.Image, error) {
	if img.Channels < 1 || img.Channels > 4 {
		return nil, errors.InvalidChannels(phase, img.Channels)
	}
	want := img.Width * img.Height * img.Channels
	if len(img.Data) != want {
		return nil, errors.InvalidInput(phase, fmt.Sprintf("pixel buffer holds %d bytes, want %d", len(img.Data), want))
	}

	r := image.Rect(0, 0, img.Width, img.Height)
	switch img.Channels {
	case 1:
		return &image.Gray{Pix: img.Data, Stride: img.Width, Rect: r}, nil
	case 4:
		return &image.NRGBA{Pix: img.Data, Stride: img.Width * 4, Rect: r}, nil
	}

	out := image.NewNRGBA(r)
	for i := 0; i < img.Width*img.Height; i++ {
		s := i * img.Channels
		d := i * 4
		if img.Channels == 2 {
			y := img.Data[s]
			out.Pix[d+0] = y
			out.Pix[d+1] = y
			out.Pix[d+2] = y
			out.Pix[d+3] = img.Data[s+1]
		} else {
			out.Pix[d+0] = img.Data[s+0]
			out.Pix[d+1] = img.Data[s+1]
			out.Pix[d+2] = img.Data[s+2]
			out.Pix[d+3] = 0xFF
		}
	}
	return out, nil
}
