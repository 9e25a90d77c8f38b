package zorder

import "fmt"

// Uint128 is an unsigned 128-bit integer in two 64-bit halves. Go has no
// native uint128, but the widest index combinations (e.g. two 64-bit or
// sixteen 8-bit coordinates) need one.
//
// The zero value is the number 0. All methods are pure and return a new
// value.
type Uint128 struct {
	Hi, Lo uint64
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Shl returns u << n. Shift counts of 128 or more return 0.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		// Note: n == 0 makes the cross-half term u.Lo >> 64, which Go
		// defines as 0, so no special case is needed.
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Shr returns u >> n. Shift counts of 128 or more return 0.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// String returns u as a fixed-width, zero-padded hexadecimal string.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}
