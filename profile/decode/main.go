// Profiling:
// go build ./profile/decode
// go tool pprof -http=":8000" -nodefraction=0.001 ./decode mem.pprof

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pkg/profile"

	"github.com/giusdp/gamekit/pixel"
)

func main() {
	rounds := 50
	iters := 200
	data, err := samplePNG(256, 256)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sample png: %v\n", err)
		os.Exit(1)
	}

	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(data, rounds, iters)
	p.Stop()

	if err := pixel.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		os.Exit(1)
	}
}

func run(data []byte, rounds, iters int) {
	for range rounds {
		for range iters {
			img, err := pixel.Decode(bytes.NewReader(data), 4)
			if err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
			img.Free()
		}
	}
}

func samplePNG(w, h int) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 251)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
