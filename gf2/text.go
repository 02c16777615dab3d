package gf2

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// String returns p as a sum of powers of x, highest first, e.g.
// "x^5 + x^3 + x + 1". The zero polynomial is "0".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if p.Coefficient(i) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}

func parseTerm(term string) (int, error) {
	switch term {
	case "0":
		return -1, nil
	case "1":
		return 0, nil
	case "x", "X":
		return 1, nil
	}

	if len(term) < 3 || (term[0] != 'x' && term[0] != 'X') || term[1] != '^' {
		return 0, errors.Errorf("invalid term %q", term)
	}
	n, err := strconv.Atoi(term[2:])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid exponent in term %q", term)
	}
	if n < 0 {
		return 0, errors.Errorf("negative exponent in term %q", term)
	}
	if n > MaxParseDegree {
		return 0, errors.Errorf("exponent in term %q exceeds %d", term, MaxParseDegree)
	}
	return n, nil
}

// MaxParseDegree is the largest exponent ParsePoly accepts, which
// bounds the memory a parsed polynomial can take.
const MaxParseDegree = 1 << 20

// ParsePoly parses a polynomial in the form returned by String. Terms
// may appear in any order, and a repeated term cancels out, as
// addition is over GF(2).
func ParsePoly(s string) (Poly, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return Poly{}, errors.New("empty polynomial")
	}

	terms := strings.Split(s, "+")
	exponents := make([]int, 0, len(terms))
	maxExp := -1
	for _, term := range terms {
		n, err := parseTerm(term)
		if err != nil {
			return Poly{}, errors.Wrapf(err, "could not parse %q", s)
		}
		if n < 0 {
			continue
		}
		exponents = append(exponents, n)
		if n > maxExp {
			maxExp = n
		}
	}

	c := make([]byte, maxExp+1)
	for _, n := range exponents {
		c[n] ^= 1
	}
	return newPoly(c), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Poly) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Poly) UnmarshalText(text []byte) error {
	q, err := ParsePoly(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
