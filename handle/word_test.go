package handle

import "testing"

func TestOnesU128(t *testing.T) {
	tests := []struct {
		n    uint
		want U128
	}{
		{n: 0, want: U128{}},
		{n: 1, want: U128{Lo: 1}},
		{n: 63, want: U128{Lo: 1<<63 - 1}},
		{n: 64, want: U128{Lo: ^uint64(0)}},
		{n: 65, want: U128{Lo: ^uint64(0), Hi: 1}},
		{n: 96, want: U128{Lo: ^uint64(0), Hi: 1<<32 - 1}},
		{n: 128, want: U128{Lo: ^uint64(0), Hi: ^uint64(0)}},
	}

	for _, tt := range tests {
		if got := OnesU128(tt.n); got != tt.want {
			t.Errorf("OnesU128(%d) = %+v, want %+v", tt.n, got, tt.want)
		}
	}
}

func TestU128_Shifts(t *testing.T) {
	one := U128{Lo: 1}

	if got := one.Shl(64); got != (U128{Hi: 1}) {
		t.Errorf("1 << 64 = %+v, want {0 1}", got)
	}
	if got := one.Shl(127); got != (U128{Hi: 1 << 63}) {
		t.Errorf("1 << 127 = %+v", got)
	}
	if got := one.Shl(128); !got.IsZero() {
		t.Errorf("1 << 128 = %+v, want zero", got)
	}
	if got := (U128{Hi: 1}).Shr(64); got != one {
		t.Errorf("2^64 >> 64 = %+v, want {1 0}", got)
	}

	// Bits crossing the limb boundary.
	cross := U128{Lo: 0xFFFF000000000000}
	if got := cross.Shl(16); got != (U128{Hi: 0xFFFF}) {
		t.Errorf("cross-limb Shl = %+v", got)
	}
	if got := (U128{Hi: 0xFFFF}).Shr(16); got != cross {
		t.Errorf("cross-limb Shr = %+v", got)
	}

	// Round trip below the top bit.
	v := U128{Lo: 0xDEADBEEF}
	if got := v.Shl(96).Shr(96); got != v {
		t.Errorf("Shl/Shr round trip = %+v, want %+v", got, v)
	}
}

func TestU128_Bitwise(t *testing.T) {
	a := U128{Lo: 0xF0F0, Hi: 0xAAAA}
	b := U128{Lo: 0x0FF0, Hi: 0x5555}

	if got := a.And(b); got != (U128{Lo: 0x00F0}) {
		t.Errorf("And = %+v", got)
	}
	if got := a.Or(b); got != (U128{Lo: 0xFFF0, Hi: 0xFFFF}) {
		t.Errorf("Or = %+v", got)
	}
	if got := a.Not().Not(); got != a {
		t.Errorf("double Not = %+v, want %+v", got, a)
	}
	if !OnesU128(128).Not().IsZero() {
		t.Error("Not of all-ones should be zero")
	}
}

func TestU128_String(t *testing.T) {
	tests := []struct {
		v    U128
		want string
	}{
		{v: U128{}, want: "0"},
		{v: U128{Lo: 81}, want: "81"},
		{v: U128{Hi: 1}, want: "18446744073709551616"},
		{v: U128{Lo: ^uint64(0), Hi: ^uint64(0)}, want: "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestU128_Hex(t *testing.T) {
	tests := []struct {
		v    U128
		want string
	}{
		{v: U128{}, want: "0x00000000000000000000000000000000"},
		{v: U128{Lo: 0xDEADBEEF}, want: "0x000000000000000000000000deadbeef"},
		{v: U128{Hi: 1}, want: "0x00000000000000010000000000000000"},
	}

	for _, tt := range tests {
		if got := tt.v.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestU128_FieldComposition(t *testing.T) {
	// The 96/32 split a generated wide handle type uses.
	idxMask := OnesU128(96)
	index := U128FromUint64(123456789)
	cycle := uint64(77)

	packed := U128FromUint64(cycle).Shl(96).Or(index.And(idxMask))
	if got := packed.And(idxMask); got != index {
		t.Errorf("index field = %+v, want %+v", got, index)
	}
	if got := packed.Shr(96).Uint64(); got != cycle {
		t.Errorf("cycle field = %d, want %d", got, cycle)
	}
}

func TestOnesU256(t *testing.T) {
	tests := []struct {
		n    uint
		want U256
	}{
		{n: 0, want: U256{}},
		{n: 1, want: U256{Limb: [4]uint64{1, 0, 0, 0}}},
		{n: 64, want: U256{Limb: [4]uint64{^uint64(0), 0, 0, 0}}},
		{n: 100, want: U256{Limb: [4]uint64{^uint64(0), 1<<36 - 1, 0, 0}}},
		{n: 192, want: U256{Limb: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), 0}}},
		{n: 256, want: U256{Limb: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}},
	}

	for _, tt := range tests {
		if got := OnesU256(tt.n); got != tt.want {
			t.Errorf("OnesU256(%d) = %+v, want %+v", tt.n, got, tt.want)
		}
	}
}

func TestU256_Shifts(t *testing.T) {
	one := U256FromUint64(1)

	if got := one.Shl(128); got != (U256{Limb: [4]uint64{0, 0, 1, 0}}) {
		t.Errorf("1 << 128 = %+v", got)
	}
	if got := one.Shl(200); got != (U256{Limb: [4]uint64{0, 0, 0, 256}}) {
		t.Errorf("1 << 200 = %+v", got)
	}
	if got := one.Shl(256); !got.IsZero() {
		t.Errorf("1 << 256 = %+v, want zero", got)
	}
	if got := one.Shl(200).Shr(200); got != one {
		t.Errorf("Shl/Shr round trip = %+v, want %+v", got, one)
	}

	// Bits crossing limb boundaries.
	cross := U256{Limb: [4]uint64{0xFFFF000000000000, 0, 0, 0}}
	if got := cross.Shl(16); got != (U256{Limb: [4]uint64{0, 0xFFFF, 0, 0}}) {
		t.Errorf("cross-limb Shl = %+v", got)
	}
}

func TestU256_Bitwise(t *testing.T) {
	a := OnesU256(200)
	b := OnesU256(100)

	if got := a.And(b); got != b {
		t.Errorf("And = %+v, want %+v", got, b)
	}
	if got := b.Or(a); got != a {
		t.Errorf("Or = %+v, want %+v", got, a)
	}
	if got := a.Not().Not(); got != a {
		t.Errorf("double Not = %+v, want %+v", got, a)
	}
}

func TestU256_Conversions(t *testing.T) {
	v := U128{Lo: 0xDEADBEEF, Hi: 0xCAFE}

	wide := U256FromU128(v)
	if got := wide.U128(); got != v {
		t.Errorf("U128 round trip = %+v, want %+v", got, v)
	}
	if got := wide.Uint64(); got != 0xDEADBEEF {
		t.Errorf("Uint64 = %#x, want 0xDEADBEEF", got)
	}
	if got := U256FromUint64(42).Uint64(); got != 42 {
		t.Errorf("U256FromUint64 round trip = %d, want 42", got)
	}
}

func TestU256_Hex(t *testing.T) {
	got := U256{Limb: [4]uint64{0xBEEF, 0, 0, 1}}.Hex()
	want := "0x000000000000000100000000000000000000000000000000000000000000beef"
	if got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}

func TestU256_String(t *testing.T) {
	tests := []struct {
		v    U256
		want string
	}{
		{v: U256{}, want: "0"},
		{v: U256FromUint64(81), want: "81"},
		{v: U256{Limb: [4]uint64{0, 0, 1, 0}}, want: "340282366920938463463374607431768211456"},
		{v: OnesU256(256), want: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
