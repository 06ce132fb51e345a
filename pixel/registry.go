package pixel

import (
	"sync"

	"go.uber.org/zap"

	"github.com/giusdp/gamekit/errors"
)

// ledger tracks every outstanding pixel buffer by image pointer.
type ledger struct {
	mu    sync.Mutex
	sizes map[*Image]int
}

var buffers = ledger{sizes: make(map[*Image]int)}

func (l *ledger) track(img *Image) {
	l.mu.Lock()
	l.sizes[img] = len(img.Data)
	l.mu.Unlock()
}

func (l *ledger) release(img *Image) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sizes[img]; !ok {
		return false
	}
	delete(l.sizes, img)
	return true
}

func (l *ledger) stats() (count int, bytes int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, size := range l.sizes {
		bytes += int64(size)
	}
	return len(l.sizes), bytes
}

// Free releases the image's pixel buffer back to the pool and clears
// Data. Freeing an image twice is logged and otherwise ignored.
func (img *Image) Free() {
	if img == nil {
		return
	}
	if !buffers.release(img) {
		Logger().Warn("freeing untracked image",
			zap.Int("width", img.Width),
			zap.Int("height", img.Height))
		return
	}
	putPixelBuf(img.Data)
	img.Data = nil
}

// OutstandingBuffers reports how many decoded images have not been freed.
func OutstandingBuffers() int {
	count, _ := buffers.stats()
	return count
}

// OutstandingBytes reports the total size of all unfreed pixel buffers.
func OutstandingBytes() int64 {
	_, bytes := buffers.stats()
	return bytes
}

// Shutdown verifies that every decoded image has been freed.
// It fails if any pixel buffer is still outstanding.
func Shutdown() error {
	count, bytes := buffers.stats()
	if count > 0 {
		Logger().Warn("pixel buffers still outstanding",
			zap.Int("buffers", count),
			zap.Int64("bytes", bytes))
		return errors.BuffersOutstanding(count, bytes)
	}
	return nil
}
