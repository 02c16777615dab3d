package gf2

import "math/bits"

// A Poly64 is a polynomial over GF(2) mod x^64.
type Poly64 uint64

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^64.
func (p Poly64) Times(q Poly64) Poly64 {
	var prod Poly64
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

func ilog2(n uint64) int {
	return bits.Len64(n) - 1
}

// Deg returns the degree of p, or -1 if p is zero.
func (p Poly64) Deg() int {
	return ilog2(uint64(p))
}

// Div returns the quotient and remainder of p divided by q as
// polynomials over GF(2). It panics if q == 0.
func (p Poly64) Div(q Poly64) (quo, rem Poly64) {
	if q == 0 {
		panic("division by zero")
	}

	qDeg := q.Deg()
	rem = p
	for rem != 0 {
		shift := rem.Deg() - qDeg
		if shift < 0 {
			break
		}
		quo |= 1 << uint(shift)
		rem ^= q << uint(shift)
	}
	return quo, rem
}
