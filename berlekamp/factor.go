package berlekamp

import (
	"io"
	"sort"

	"github.com/akalin/berlekamp/gf2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}()

// A Factorer factors polynomials over GF(2). The zero value is ready
// to use.
type Factorer struct {
	// Logger receives debug-level traces of each factorization
	// step. If nil, nothing is logged.
	Logger logrus.FieldLogger
	// Sorted makes Factor return factors in gf2.Poly.Compare
	// order. Otherwise the order is unspecified.
	Sorted bool
}

func (f Factorer) logger() logrus.FieldLogger {
	if f.Logger == nil {
		return discardLogger
	}
	return f.Logger
}

// Factor returns the irreducible factors of p, with a factor dividing
// p k times appearing k times. The product of the factors is p. The
// zero polynomial and the constant 1 are returned as the single
// factor [p].
func (f Factorer) Factor(p gf2.Poly) []gf2.Poly {
	factors := factor(f.logger(), p)
	if f.Sorted {
		sort.Slice(factors, func(i, j int) bool {
			return factors[i].Compare(factors[j]) < 0
		})
	}
	return factors
}

// Factor is shorthand for Factorer{}.Factor(p).
func Factor(p gf2.Poly) []gf2.Poly {
	return Factorer{}.Factor(p)
}

// factor reduces p to square-free pieces, which are passed on to
// berlekamp. Each recursive call is on a polynomial of smaller
// degree.
func factor(log logrus.FieldLogger, p gf2.Poly) []gf2.Poly {
	if p.IsZero() || p.IsOne() {
		return []gf2.Poly{p}
	}

	// p and d are logged as fmt.Stringers, so they're only formatted
	// if the entry is written.
	log = log.WithField("poly", p)

	pDeriv := p.Derivative()
	if pDeriv.IsZero() {
		// p has only even-degree terms, so p = q^2 for q =
		// EvenTerms(p), and each factor of q appears twice.
		log.Debug("factoring square root")
		factors := factor(log, p.EvenTerms())
		return append(factors, factors...)
	}

	d := p.GCD(pDeriv)
	if d.IsOne() {
		log.Debug("square-free")
		return berlekamp(log, p)
	}

	log.WithField("gcd", d).Debug("splitting on gcd with derivative")
	return append(factor(log, d), factor(log, p.Div(d))...)
}

// Product returns the product of the given polynomials, which is 1 for
// an empty list.
func Product(factors []gf2.Poly) gf2.Poly {
	prod := gf2.One()
	for _, f := range factors {
		prod = prod.Times(f)
	}
	return prod
}

var (
	// ErrProductMismatch is returned (wrapped) by Verify when the
	// factors don't multiply back to the input.
	ErrProductMismatch = errors.New("product of factors does not match")
	// ErrNotIrreducible is returned (wrapped) by Verify when a
	// factor is reducible.
	ErrNotIrreducible = errors.New("factor is not irreducible")
)

// Verify checks that factors is a factorization of p into irreducible
// polynomials, as returned by Factor. The zero polynomial and the
// constant 1 must be factored as [p]. Use errors.Cause to compare the
// returned error against ErrProductMismatch or ErrNotIrreducible.
func Verify(p gf2.Poly, factors []gf2.Poly) error {
	if p.IsZero() || p.IsOne() {
		if len(factors) != 1 || !factors[0].Equal(p) {
			return errors.Wrapf(ErrProductMismatch, "%s must factor as itself, got %v", p, factors)
		}
		return nil
	}

	for i, f := range factors {
		if !f.Irreducible() {
			return errors.Wrapf(ErrNotIrreducible, "factor %d (%s) of %s", i, f, p)
		}
	}

	if prod := Product(factors); !prod.Equal(p) {
		return errors.Wrapf(ErrProductMismatch, "expected %s, got %s", p, prod)
	}
	return nil
}
