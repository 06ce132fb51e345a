package pixel

import (
	"bufio"
	"io"
	"sync"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxPixelBytes = 16 << 20 // max pooled pixel buffer
	poolInitPixelCap  = 64 << 10
	poolReaderSize    = 32 << 10
)

// pixel buffer pool for decode targets
var pixelBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitPixelCap)
		return &buf
	},
}

func getPixelBuf(n int) []byte {
	buf := *pixelBufPool.Get().(*[]byte)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	return buf[:n]
}

func putPixelBuf(buf []byte) {
	if buf == nil || cap(buf) > poolMaxPixelBytes {
		return // reject oversized
	}
	buf = buf[:0]
	pixelBufPool.Put(&buf)
}

// buffered reader pool for file decodes
var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, poolReaderSize)
	},
}

func getReader(r io.Reader) *bufio.Reader {
	br := readerPool.Get().(*bufio.Reader)
	br.Reset(r)
	return br
}

func putReader(br *bufio.Reader) {
	br.Reset(nil)
	readerPool.Put(br)
}
