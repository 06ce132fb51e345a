package handle

import "testing"

func FuzzPackUnpack(f *testing.F) {
	f.Add(uint32(0), uint32(0))
	f.Add(uint32(81), uint32(3))
	f.Add(uint32(1<<22-1), uint32(1023))
	f.Add(^uint32(0), ^uint32(0))

	s := Must[uint32, Texture](22, 10)

	f.Fuzz(func(t *testing.T, index, cycle uint32) {
		h := s.Pack(index, cycle)
		if got := s.Index(h); got != index&s.MaxIndex() {
			t.Errorf("Index = %d, want %d", got, index&s.MaxIndex())
		}
		if got := s.Cycle(h); got != cycle&s.MaxCycle() {
			t.Errorf("Cycle = %d, want %d", got, cycle&s.MaxCycle())
		}
		if got := s.Compact(s.Unpack(h)); got != h {
			t.Errorf("Compact(Unpack(h)) = %v, want %v", got, h)
		}
		if got := FromBits[uint32, Texture](h.Bits()); got != h {
			t.Errorf("FromBits(Bits(h)) = %v, want %v", got, h)
		}
	})
}

func FuzzU128Shifts(f *testing.F) {
	f.Add(uint64(1), uint64(0), uint(96))
	f.Add(^uint64(0), ^uint64(0), uint(1))
	f.Add(uint64(0xDEADBEEF), uint64(0), uint(64))

	f.Fuzz(func(t *testing.T, lo, hi uint64, n uint) {
		n %= 128
		v := U128{Lo: lo, Hi: hi}

		// A left shift then right shift keeps exactly the bits that were
		// not pushed out the top.
		kept := v.And(OnesU128(128 - n))
		if got := v.Shl(n).Shr(n); got != kept {
			t.Errorf("Shl(%d).Shr(%d) = %+v, want %+v", n, n, got, kept)
		}
	})
}
