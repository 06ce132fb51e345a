package pixel

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/giusdp/gamekit/errors"
)

// Resized returns a copy of the image scaled to width by height using
// Catmull-Rom interpolation. The channel count is preserved and the
// result is tracked like any decoded image.
func (img *Image) Resized(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidInput(errors.PhaseResize, fmt.Sprintf("target size %dx%d is not positive", width, height))
	}
	src, err := img.view(errors.PhaseResize)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out, err := fromImage(dst, img.Channels, "")
	if err != nil {
		return nil, err
	}
	out.ChannelsInFile = img.ChannelsInFile
	return out, nil
}
