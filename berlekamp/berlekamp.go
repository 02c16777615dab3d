// Package berlekamp factors polynomials over GF(2) into irreducible
// factors, using square-free decomposition followed by Berlekamp's
// algorithm.
package berlekamp

import (
	"github.com/akalin/berlekamp/gf2"
	"github.com/sirupsen/logrus"
)

// QMatrix returns the Berlekamp matrix of u, which is the n x n
// matrix, n = deg(u), whose kth row holds the first n coefficients of
// x^(2k) mod u. It panics if u has degree less than 1.
func QMatrix(u gf2.Poly) gf2.Matrix {
	n := u.Degree()
	if n < 1 {
		panic("polynomial must have positive degree")
	}

	x2 := gf2.NewMonomial(2)
	rows := make([][]byte, n)
	p := gf2.One()
	rows[0] = p.FixedCoefficients(n)
	for k := 1; k < n; k++ {
		p = p.MulMod(x2, u)
		rows[k] = p.FixedCoefficients(n)
	}
	return gf2.NewMatrixFromRows(rows)
}

// NullSpaceBasis returns a basis of the null space of (Q - I)^T as
// polynomials. When q is the Berlekamp matrix of u, these are the
// polynomials v of degree less than deg(u) with v^2 = v mod u, and
// the first one is always 1.
func NullSpaceBasis(q gf2.Matrix) []gf2.Poly {
	a := q.Minus(gf2.NewIdentityMatrix(q.Size())).Transpose()
	vectors := a.NullSpace()
	basis := make([]gf2.Poly, len(vectors))
	for i, v := range vectors {
		basis[i] = gf2.NewPolyFromBits(v)
	}
	return basis
}

// split refines the factorization [u] using the gcds of each factor
// with v and v - 1 for each basis element v past the first, until
// there are as many factors as basis elements. The loop stops once
// the basis is exhausted, so a u that isn't square-free gives a
// wrong answer instead of a panic.
func split(log logrus.FieldLogger, u gf2.Poly, basis []gf2.Poly) []gf2.Poly {
	factors := []gf2.Poly{u}
	for k := 1; k < len(basis) && len(factors) < len(basis); k++ {
		var newFactors []gf2.Poly
		for _, s := range []gf2.Poly{{}, gf2.One()} {
			v := basis[k].Minus(s)
			for _, w := range factors {
				g := w.GCD(v)
				if !g.IsOne() {
					newFactors = append(newFactors, g)
				}
			}
		}
		factors = newFactors
		log.WithFields(logrus.Fields{
			"round":   k,
			"factors": len(factors),
		}).Debug("split factors")
	}
	return factors
}

func berlekamp(log logrus.FieldLogger, u gf2.Poly) []gf2.Poly {
	if u.Degree() <= 1 {
		return []gf2.Poly{u}
	}

	basis := NullSpaceBasis(QMatrix(u))
	log.WithFields(logrus.Fields{
		"degree": u.Degree(),
		"basis":  len(basis),
	}).Debug("computed Berlekamp null space")
	return split(log, u, basis)
}

// Berlekamp returns the irreducible factors of u, which must be
// square-free, i.e. gcd(u, u') = 1. This isn't checked; if u isn't
// square-free, the returned factors may be reducible. Polynomials of
// degree at most 1 are returned as is.
func Berlekamp(u gf2.Poly) []gf2.Poly {
	return berlekamp(discardLogger, u)
}
