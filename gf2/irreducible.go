package gf2

// Irreducible returns whether p is irreducible over GF(2), i.e. has
// positive degree and no divisors other than 1 and itself. It uses
// Ben-Or's test: p of degree n is irreducible iff
// gcd(p, x^(2^i) - x) = 1 for all 1 <= i <= n/2.
func (p Poly) Irreducible() bool {
	n := p.Degree()
	if n < 1 {
		return false
	}

	x := NewMonomial(1)
	// h is x^(2^i) mod p.
	h := x.Mod(p)
	for i := 1; i <= n/2; i++ {
		h = h.MulMod(h, p)
		if !p.GCD(h.Minus(x)).IsOne() {
			return false
		}
	}
	return true
}
