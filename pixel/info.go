package pixel

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/giusdp/gamekit/errors"
)

// ImageInfo describes an encoded image without decoding its pixels.
type ImageInfo struct {
	Width    int
	Height   int
	Channels int
	Format   string
}

// Info probes the image file at path, reading only its header.
func Info(path string) (ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, errors.ReadFailed(path, err)
	}
	defer f.Close()

	br := getReader(f)
	defer putReader(br)

	info, err := DecodeInfo(br)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.File == "" {
			e.File = path
		}
		return ImageInfo{}, err
	}
	return info, nil
}

// DecodeInfo probes an encoded image from r, reading only its header.
func DecodeInfo(r io.Reader) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err == image.ErrFormat {
		return ImageInfo{}, errors.UnknownFormat("", err)
	}
	if err != nil {
		return ImageInfo{}, errors.DecodeFailed("", err)
	}
	return ImageInfo{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Channels: modelChannels(cfg.ColorModel),
		Format:   format,
	}, nil
}

func modelChannels(m color.Model) int {
	// color.Palette is a slice, so the assertion has to run before the
	// switch compares m against the predefined models.
	if p, ok := m.(color.Palette); ok {
		return paletteChannels(p)
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	case color.RGBAModel, color.RGBA64Model:
		return 3
	}
	return 4
}
