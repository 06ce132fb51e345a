// Profiling:
// go build ./profile/pack
// go tool pprof -http=":8000" -nodefraction=0.001 ./pack cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/giusdp/gamekit/handle"
)

const (
	indexBits = 96
	cycleBits = 32
)

var indexMask = handle.OnesU128(indexBits)

func main() {
	rounds := 200
	items := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, items)
	p.Stop()
}

func run(rounds, items int) {
	var sink uint64
	for range rounds {
		for i := 0; i < items; i++ {
			index := handle.U128FromUint64(uint64(i))
			cycle := uint64(i) % (1 << cycleBits)
			bits := handle.U128FromUint64(cycle).Shl(indexBits).Or(index.And(indexMask))
			sink += bits.Shr(indexBits).Uint64() + bits.And(indexMask).Lo
		}
	}
	_ = sink
}
