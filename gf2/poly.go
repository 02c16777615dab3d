package gf2

// A Poly is a polynomial over GF(2) of arbitrary degree. The zero
// value is the zero polynomial. Polys are immutable; every operation
// returns a new value.
type Poly struct {
	// coefficients[i] is the coefficient of x^i, and is either 0
	// or 1. The last element is always 1, except for the zero
	// polynomial, which is stored as [0] (or nil, for the zero
	// value).
	coefficients []byte
}

// newPoly takes ownership of c and trims it to canonical form.
func newPoly(c []byte) Poly {
	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
	}
	if len(c) == 0 {
		c = []byte{0}
	}
	return Poly{c}
}

// NewPoly returns the polynomial with the given coefficients, lowest
// degree first. Each coefficient is reduced mod 2.
func NewPoly(coefficients ...int) Poly {
	c := make([]byte, len(coefficients))
	for i, x := range coefficients {
		c[i] = byte(x & 1)
	}
	return newPoly(c)
}

// NewPolyFromBits is like NewPoly, but takes a byte slice, as returned
// by Coefficients or Matrix.Row.
func NewPolyFromBits(bits []byte) Poly {
	c := make([]byte, len(bits))
	for i, x := range bits {
		c[i] = x & 1
	}
	return newPoly(c)
}

// NewMonomial returns x^n. It panics if n < 0.
func NewMonomial(n int) Poly {
	if n < 0 {
		panic("negative exponent")
	}
	c := make([]byte, n+1)
	c[n] = 1
	return Poly{c}
}

// One returns the constant polynomial 1.
func One() Poly {
	return Poly{[]byte{1}}
}

// NewPolyFromPoly64 converts p to a Poly.
func NewPolyFromPoly64(p Poly64) Poly {
	c := make([]byte, 64)
	for i := range c {
		c[i] = byte(p>>uint(i)) & 1
	}
	return newPoly(c)
}

// Poly64 returns p packed into a Poly64, and whether p fits, i.e. has
// degree less than 64.
func (p Poly) Poly64() (Poly64, bool) {
	if p.Degree() >= 64 {
		return 0, false
	}
	var q Poly64
	for i, x := range p.coefficients {
		q |= Poly64(x) << uint(i)
	}
	return q, true
}

// Degree returns the degree of p. The zero polynomial has degree 0,
// like the constant 1; use IsZero to tell them apart.
func (p Poly) Degree() int {
	if len(p.coefficients) == 0 {
		return 0
	}
	return len(p.coefficients) - 1
}

// Coefficient returns the coefficient of x^i in p, which is 0 for any
// i past the degree of p.
func (p Poly) Coefficient(i int) byte {
	if i < 0 || i >= len(p.coefficients) {
		return 0
	}
	return p.coefficients[i]
}

// IsZero returns whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.Degree() == 0 && p.Coefficient(0) == 0
}

// IsOne returns whether p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return p.Degree() == 0 && p.Coefficient(0) == 1
}

// Equal returns whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	if p.Degree() != q.Degree() {
		return false
	}
	for i := 0; i <= p.Degree(); i++ {
		if p.Coefficient(i) != q.Coefficient(i) {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 depending on whether p sorts before,
// equal to, or after q. Polynomials are ordered by degree, then by
// coefficients from the highest power down, with zero before 1.
func (p Poly) Compare(q Poly) int {
	if p.Degree() != q.Degree() {
		if p.Degree() < q.Degree() {
			return -1
		}
		return 1
	}
	for i := p.Degree(); i >= 0; i-- {
		a, b := p.Coefficient(i), q.Coefficient(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Coefficients returns a copy of the coefficients of p, lowest degree
// first. The result has no trailing zeros, except for the zero
// polynomial, which returns [0].
func (p Poly) Coefficients() []byte {
	return p.FixedCoefficients(p.Degree() + 1)
}

// FixedCoefficients returns the first n coefficients of p, padded with
// zeros if p has fewer than n.
func (p Poly) FixedCoefficients(n int) []byte {
	if n < 0 {
		panic("negative coefficient count")
	}
	c := make([]byte, n)
	copy(c, p.coefficients)
	return c
}

// Plus returns the sum of p and q, which is just the xor of their
// coefficients.
func (p Poly) Plus(q Poly) Poly {
	n := len(p.coefficients)
	if len(q.coefficients) > n {
		n = len(q.coefficients)
	}
	c := make([]byte, n)
	for i := range c {
		c[i] = p.Coefficient(i) ^ q.Coefficient(i)
	}
	return newPoly(c)
}

// Minus returns the difference of p and q, which over GF(2) is the
// same as their sum.
func (p Poly) Minus(q Poly) Poly {
	return p.Plus(q)
}

// Times returns the product of p and q.
func (p Poly) Times(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}

	c := make([]byte, p.Degree()+q.Degree()+1)
	for i, a := range p.coefficients {
		if a == 0 {
			continue
		}
		for j, b := range q.coefficients {
			c[i+j] ^= b
		}
	}
	return newPoly(c)
}

// DivMod returns the quotient and remainder of p divided by d, so
// that p = quo*d + rem with deg(rem) < deg(d). Dividing by the zero
// polynomial doesn't panic, and returns (0, 0) instead.
func (p Poly) DivMod(d Poly) (quo, rem Poly) {
	if d.IsZero() {
		return Poly{}, Poly{}
	}
	if p.Degree() < d.Degree() {
		return Poly{}, p
	}

	dDeg := d.Degree()
	q := make([]byte, p.Degree()-dDeg+1)
	r := p.Coefficients()
	for k := len(q) - 1; k >= 0; k-- {
		q[k] = r[k+dDeg]
		if q[k] == 0 {
			continue
		}
		for j, b := range d.coefficients {
			r[k+j] ^= b
		}
	}
	return newPoly(q), newPoly(r[:dDeg])
}

// Div returns the quotient of p divided by d.
func (p Poly) Div(d Poly) Poly {
	quo, _ := p.DivMod(d)
	return quo
}

// Mod returns the remainder of p divided by d.
func (p Poly) Mod(d Poly) Poly {
	_, rem := p.DivMod(d)
	return rem
}

// Derivative returns the formal derivative of p. Over GF(2), the terms
// of p with an even exponent vanish, so the derivative is zero exactly
// when p has only even-degree terms.
func (p Poly) Derivative() Poly {
	deg := p.Degree()
	if deg == 0 {
		return Poly{}
	}
	c := make([]byte, deg)
	for i := range c {
		// The coefficient of x^i is (i+1)*p_{i+1}.
		if (i+1)%2 == 1 {
			c[i] = p.coefficients[i+1]
		}
	}
	return newPoly(c)
}

// GCD returns the greatest common divisor of p and q, computed with
// the Euclidean algorithm. GCD(p, 0) is p.
func (p Poly) GCD(q Poly) Poly {
	a, b := p, q
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

// EvenTerms returns the polynomial whose coefficient of x^i is the
// coefficient of x^(2i) in p. If p has only even-degree terms, then
// p = EvenTerms(p)^2, since squaring is linear over GF(2).
func (p Poly) EvenTerms() Poly {
	c := make([]byte, 0, len(p.coefficients)/2+1)
	for i := 0; i < len(p.coefficients); i += 2 {
		c = append(c, p.coefficients[i])
	}
	return newPoly(c)
}

// MulMod returns p*q mod m.
func (p Poly) MulMod(q, m Poly) Poly {
	return p.Times(q).Mod(m)
}

// PowMod returns p^n mod m, by repeated squaring.
func (p Poly) PowMod(n uint, m Poly) Poly {
	r := One().Mod(m)
	for b := p.Mod(m); n != 0; n >>= 1 {
		if n&1 != 0 {
			r = r.MulMod(b, m)
		}
		b = b.MulMod(b, m)
	}
	return r
}
