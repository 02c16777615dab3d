package gf2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyString(t *testing.T) {
	require.Equal(t, "0", Poly{}.String())
	require.Equal(t, "1", One().String())
	require.Equal(t, "x", NewPoly(0, 1).String())
	require.Equal(t, "x^3 + x^2 + 1", NewPoly(1, 0, 1, 1).String())
	require.Equal(t, "x^5 + x^3 + x + 1", NewPoly(1, 1, 0, 1, 0, 1).String())
}

func TestParsePoly(t *testing.T) {
	for _, s := range []string{
		"0", "1", "x", "x + 1", "x^3 + x^2 + 1", "x^100 + x^7 + x",
	} {
		p, err := ParsePoly(s)
		require.NoError(t, err, "s=%q", s)
		require.Equal(t, s, p.String())
	}

	p, err := ParsePoly(" 1+X^2 +x^3 ")
	require.NoError(t, err)
	require.True(t, NewPoly(1, 0, 1, 1).Equal(p))

	// Repeated terms cancel.
	p, err = ParsePoly("x^3 + x + x^3")
	require.NoError(t, err)
	require.Equal(t, "x", p.String())

	p, err = ParsePoly("x^3 + x^3")
	require.NoError(t, err)
	require.True(t, p.IsZero())

	p, err = ParsePoly("0 + x")
	require.NoError(t, err)
	require.Equal(t, "x", p.String())
}

func TestParsePolyInvalid(t *testing.T) {
	for _, s := range []string{
		"", "  ", "y", "x^", "x^-1", "x^a", "x + + 1", "2", "x^2x",
		"x^99999999999", "x^1048577 + 1",
	} {
		_, err := ParsePoly(s)
		require.Error(t, err, "s=%q", s)
	}
}

func TestParsePolyMaxDegree(t *testing.T) {
	p, err := ParsePoly("x^1048576 + 1")
	require.NoError(t, err)
	require.Equal(t, MaxParseDegree, p.Degree())

	_, err = ParsePoly("x^1048577")
	require.Error(t, err)

	var q Poly
	require.Error(t, q.UnmarshalText([]byte("x^200000000")))
	require.True(t, q.IsZero())
}

func TestPolyTextRoundTrip(t *testing.T) {
	type factorization struct {
		Input   Poly
		Factors []Poly
	}

	f := factorization{
		Input:   NewPoly(1, 0, 1),
		Factors: []Poly{NewPoly(1, 1), NewPoly(1, 1)},
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	require.Equal(t, `{"Input":"x^2 + 1","Factors":["x + 1","x + 1"]}`, string(data))

	var g factorization
	require.NoError(t, json.Unmarshal(data, &g))
	require.True(t, f.Input.Equal(g.Input))
	require.Len(t, g.Factors, 2)
	for i := range f.Factors {
		require.True(t, f.Factors[i].Equal(g.Factors[i]))
	}

	require.Error(t, json.Unmarshal([]byte(`{"Input":"x^"}`), &g))
}
