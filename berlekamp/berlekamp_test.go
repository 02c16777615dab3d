package berlekamp

import (
	"math/rand"
	"testing"

	"github.com/akalin/berlekamp/gf2"
	"github.com/stretchr/testify/require"
)

func TestQMatrix(t *testing.T) {
	// u = x^3 + x, so x^4 = x^2 mod u.
	q := QMatrix(gf2.NewPoly(0, 1, 0, 1))
	expected := gf2.NewMatrixFromRows([][]byte{
		{1, 0, 0},
		{0, 0, 1},
		{0, 0, 1},
	})
	require.True(t, expected.Equal(q), "q=\n%s", q)

	require.Panics(t, func() { QMatrix(gf2.One()) })
}

func TestQMatrixRows(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	x := gf2.NewMonomial(1)
	for trial := 0; trial < 50; trial++ {
		u := gf2.NewPolyFromPoly64(gf2.Poly64(r.Int63n(1<<12)) | 1<<12)
		q := QMatrix(u)
		require.Equal(t, u.Degree(), q.Size())
		for k := 0; k < q.Size(); k++ {
			expected := x.PowMod(uint(2*k), u).FixedCoefficients(u.Degree())
			require.Equal(t, expected, q.Row(k), "u=%s, k=%d", u, k)
		}
	}
}

func TestNullSpaceBasis(t *testing.T) {
	for _, tc := range []struct {
		u            gf2.Poly
		factorsCount int
	}{
		{gf2.NewPoly(1, 1, 1), 1},
		// (x^3 + x^2 + 1)(x^5 + x^3 + 1).
		{gf2.NewPoly(1, 0, 1, 1).Times(gf2.NewPoly(1, 0, 0, 1, 0, 1)), 2},
		// x(x + 1)(x^2 + x + 1).
		{gf2.NewPoly(0, 1).Times(gf2.NewPoly(1, 1)).Times(gf2.NewPoly(1, 1, 1)), 3},
	} {
		basis := NullSpaceBasis(QMatrix(tc.u))
		require.Len(t, basis, tc.factorsCount, "u=%s", tc.u)
		require.True(t, basis[0].IsOne(), "u=%s", tc.u)
		for _, v := range basis {
			require.Less(t, v.Degree(), tc.u.Degree(), "u=%s, v=%s", tc.u, v)
			require.True(t, v.MulMod(v, tc.u).Equal(v.Mod(tc.u)), "u=%s, v=%s", tc.u, v)
		}
	}
}

func TestBerlekamp(t *testing.T) {
	for _, u := range []gf2.Poly{
		{}, gf2.One(), gf2.NewPoly(0, 1), gf2.NewPoly(1, 1),
	} {
		factors := Berlekamp(u)
		require.Len(t, factors, 1)
		require.True(t, u.Equal(factors[0]))
	}

	u := gf2.NewPoly(0, 1).Times(gf2.NewPoly(1, 1)).Times(gf2.NewPoly(1, 1, 1))
	factors := Berlekamp(u)
	require.Equal(t, []string{"x", "x + 1", "x^2 + x + 1"}, sortedStrings(factors))
}

func TestBerlekampNotSquareFree(t *testing.T) {
	// (x + 1)^2 (x^2 + x + 1) breaks the precondition; the result
	// is meaningless, but computing it must not panic.
	u := gf2.NewPoly(1, 0, 1).Times(gf2.NewPoly(1, 1, 1))
	require.NotPanics(t, func() { Berlekamp(u) })
}
