package handle

import "testing"

var (
	benchHandle Handle[uint32, Texture]
	benchIndex  uint32
	benchString string
)

func BenchmarkPack(b *testing.B) {
	s := Must[uint32, Texture](22, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchHandle = s.Pack(uint32(i), uint32(i>>22))
	}
}

func BenchmarkUnpack(b *testing.B) {
	s := Must[uint32, Texture](22, 10)
	h := s.Pack(81, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchIndex = s.Unpack(h).Index
	}
}

func BenchmarkFormat(b *testing.B) {
	s := Must[uint32, Texture](22, 10)
	h := s.Pack(81, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchString = s.Format(h)
	}
}

func BenchmarkU128Pack(b *testing.B) {
	mask := OnesU128(96)
	for i := 0; i < b.N; i++ {
		v := U128FromUint64(uint64(i)).Shl(96).Or(U128FromUint64(uint64(i)).And(mask))
		benchIndex = uint32(v.Uint64())
	}
}
