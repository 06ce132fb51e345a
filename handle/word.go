package handle

import (
	"fmt"
	"math/bits"
	"strconv"
)

// U128 is a 128-bit unsigned word for handle layouts wider than any native
// Go integer. Limbs are little-endian: Lo holds bits 0-63.
//
// U128 is comparable, so handles built on it still compare with ==. The
// zero value is zero.
type U128 struct {
	Lo, Hi uint64
}

// U128FromUint64 widens v to 128 bits.
func U128FromUint64(v uint64) U128 {
	return U128{Lo: v}
}

// OnesU128 returns the value with the n low bits set, for n up to 128.
func OnesU128(n uint) U128 {
	switch {
	case n <= 64:
		return U128{Lo: 1<<n - 1}
	case n < 128:
		return U128{Lo: ^uint64(0), Hi: 1<<(n-64) - 1}
	default:
		return U128{Lo: ^uint64(0), Hi: ^uint64(0)}
	}
}

// Shl returns u shifted left by n bits.
func (u U128) Shl(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return U128{Lo: u.Lo << n, Hi: u.Hi<<n | u.Lo>>(64-n)}
	case n < 128:
		return U128{Hi: u.Lo << (n - 64)}
	default:
		return U128{}
	}
}

// Shr returns u shifted right by n bits.
func (u U128) Shr(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return U128{Lo: u.Lo>>n | u.Hi<<(64-n), Hi: u.Hi >> n}
	case n < 128:
		return U128{Lo: u.Hi >> (n - 64)}
	default:
		return U128{}
	}
}

// And returns the bitwise AND of u and v.
func (u U128) And(v U128) U128 {
	return U128{Lo: u.Lo & v.Lo, Hi: u.Hi & v.Hi}
}

// Or returns the bitwise OR of u and v.
func (u U128) Or(v U128) U128 {
	return U128{Lo: u.Lo | v.Lo, Hi: u.Hi | v.Hi}
}

// Not returns the bitwise complement of u.
func (u U128) Not() U128 {
	return U128{Lo: ^u.Lo, Hi: ^u.Hi}
}

// IsZero reports whether u is zero.
func (u U128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// Uint64 returns the low 64 bits of u.
func (u U128) Uint64() uint64 {
	return u.Lo
}

// String renders u in decimal.
func (u U128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	buf := make([]byte, 0, 40)
	for !u.IsZero() {
		var digit uint64
		u, digit = u.divmod10()
		buf = append(buf, byte('0'+digit))
	}
	reverse(buf)
	return string(buf)
}

func (u U128) divmod10() (U128, uint64) {
	q := U128{Hi: u.Hi / 10}
	rem := u.Hi % 10
	q.Lo, rem = bits.Div64(rem, u.Lo, 10)
	return q, rem
}

// Hex renders u as fixed-width hexadecimal, all 32 digits.
func (u U128) Hex() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}

// U256 is a 256-bit unsigned word. Limbs are little-endian: Limb[0] holds
// bits 0-63.
type U256 struct {
	Limb [4]uint64
}

// U256FromUint64 widens v to 256 bits.
func U256FromUint64(v uint64) U256 {
	return U256{Limb: [4]uint64{v, 0, 0, 0}}
}

// U256FromU128 widens v to 256 bits.
func U256FromU128(v U128) U256 {
	return U256{Limb: [4]uint64{v.Lo, v.Hi, 0, 0}}
}

// OnesU256 returns the value with the n low bits set, for n up to 256.
func OnesU256(n uint) U256 {
	var u U256
	for i := range u.Limb {
		low := uint(i) * 64
		switch {
		case n >= low+64:
			u.Limb[i] = ^uint64(0)
		case n > low:
			u.Limb[i] = 1<<(n-low) - 1
		}
	}
	return u
}

// Shl returns u shifted left by n bits.
func (u U256) Shl(n uint) U256 {
	if n >= 256 {
		return U256{}
	}
	var out U256
	limbs := int(n / 64)
	off := n % 64
	for i := 3; i >= 0; i-- {
		j := i - limbs
		if j < 0 {
			continue
		}
		v := u.Limb[j] << off
		if off != 0 && j > 0 {
			v |= u.Limb[j-1] >> (64 - off)
		}
		out.Limb[i] = v
	}
	return out
}

// Shr returns u shifted right by n bits.
func (u U256) Shr(n uint) U256 {
	if n >= 256 {
		return U256{}
	}
	var out U256
	limbs := int(n / 64)
	off := n % 64
	for i := 0; i < 4; i++ {
		j := i + limbs
		if j > 3 {
			continue
		}
		v := u.Limb[j] >> off
		if off != 0 && j < 3 {
			v |= u.Limb[j+1] << (64 - off)
		}
		out.Limb[i] = v
	}
	return out
}

// And returns the bitwise AND of u and v.
func (u U256) And(v U256) U256 {
	var out U256
	for i := range out.Limb {
		out.Limb[i] = u.Limb[i] & v.Limb[i]
	}
	return out
}

// Or returns the bitwise OR of u and v.
func (u U256) Or(v U256) U256 {
	var out U256
	for i := range out.Limb {
		out.Limb[i] = u.Limb[i] | v.Limb[i]
	}
	return out
}

// Not returns the bitwise complement of u.
func (u U256) Not() U256 {
	var out U256
	for i := range out.Limb {
		out.Limb[i] = ^u.Limb[i]
	}
	return out
}

// IsZero reports whether u is zero.
func (u U256) IsZero() bool {
	return u.Limb == [4]uint64{}
}

// Uint64 returns the low 64 bits of u.
func (u U256) Uint64() uint64 {
	return u.Limb[0]
}

// U128 returns the low 128 bits of u.
func (u U256) U128() U128 {
	return U128{Lo: u.Limb[0], Hi: u.Limb[1]}
}

// String renders u in decimal.
func (u U256) String() string {
	if u.Limb[1] == 0 && u.Limb[2] == 0 && u.Limb[3] == 0 {
		return strconv.FormatUint(u.Limb[0], 10)
	}
	buf := make([]byte, 0, 78)
	for !u.IsZero() {
		var digit uint64
		u, digit = u.divmod10()
		buf = append(buf, byte('0'+digit))
	}
	reverse(buf)
	return string(buf)
}

func (u U256) divmod10() (U256, uint64) {
	var q U256
	var rem uint64
	for i := 3; i >= 0; i-- {
		q.Limb[i], rem = bits.Div64(rem, u.Limb[i], 10)
	}
	return q, rem
}

// Hex renders u as fixed-width hexadecimal, all 64 digits.
func (u U256) Hex() string {
	return fmt.Sprintf("0x%016x%016x%016x%016x", u.Limb[3], u.Limb[2], u.Limb[1], u.Limb[0])
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
