package pixel

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/giusdp/gamekit/errors"
)

func TestSavePNGRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		forced int
		pixels []color.NRGBA
	}{
		{
			name:   "four channels",
			forced: 4,
			pixels: []color.NRGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 255}},
		},
		{
			name:   "three channels",
			forced: 3,
			pixels: []color.NRGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 4, G: 5, B: 6, A: 255}},
		},
		{
			name:   "two channels",
			forced: 2,
			pixels: []color.NRGBA{{R: 10, G: 10, B: 10, A: 128}, {R: 200, G: 200, B: 200, A: 255}},
		},
		{
			name:   "one channel",
			forced: 1,
			pixels: []color.NRGBA{{R: 60, G: 60, B: 60, A: 255}, {R: 90, G: 90, B: 90, A: 255}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.png")

			src, err := Decode(bytes.NewReader(encodePNG(t, 2, 1, tt.pixels)), tt.forced)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			defer src.Free()

			if err := src.SavePNG(path); err != nil {
				t.Fatalf("SavePNG: %v", err)
			}

			back, err := Load(path, tt.forced)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			defer back.Free()

			if back.Width != src.Width || back.Height != src.Height {
				t.Errorf("got %dx%d, want %dx%d", back.Width, back.Height, src.Width, src.Height)
			}
			if !bytes.Equal(back.Data, src.Data) {
				t.Errorf("pixel data changed across the round trip\n got %v\nwant %v", back.Data, src.Data)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	src, err := Decode(bytes.NewReader(encodePNG(t, 3, 3, make([]color.NRGBA, 9))), 4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer src.Free()

	var buf bytes.Buffer
	if err := src.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	info, err := DecodeInfo(&buf)
	if err != nil {
		t.Fatalf("DecodeInfo: %v", err)
	}
	if info.Width != 3 || info.Height != 3 || info.Format != "png" {
		t.Errorf("got %+v, want a 3x3 png", info)
	}
}

func TestEncodePNGBadImage(t *testing.T) {
	tests := []struct {
		name     string
		img      *Image
		wantKind errors.Kind
	}{
		{
			name:     "channels out of range",
			img:      &Image{Data: make([]byte, 4), Width: 2, Height: 2, Channels: 0},
			wantKind: errors.KindInvalidChannels,
		},
		{
			name:     "buffer size mismatch",
			img:      &Image{Data: make([]byte, 3), Width: 2, Height: 2, Channels: 4},
			wantKind: errors.KindInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.img.EncodePNG(&buf)
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("got %T, want *errors.Error", err)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("got kind %q, want %q", e.Kind, tt.wantKind)
			}
			if e.Phase != errors.PhaseEncode {
				t.Errorf("got phase %q, want %q", e.Phase, errors.PhaseEncode)
			}
		})
	}
}

func TestSavePNGBadPath(t *testing.T) {
	src, err := Decode(bytes.NewReader(encodePNG(t, 1, 1, make([]color.NRGBA, 1))), 4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer src.Free()

	err = src.SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir", "out.png"))
	if err == nil {
		t.Fatal("expected error")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("got %T, want *errors.Error", err)
	}
	if e.Kind != errors.KindIO {
		t.Errorf("got kind %q, want %q", e.Kind, errors.KindIO)
	}
}
