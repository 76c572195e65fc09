package vector

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}
	return r
}

func TestFromInterface(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{3, "3"},
		{int64(-7), "-7"},
		{uint8(200), "200"},
		{"2/5", "2/5"},
		{"-1/30", "-1/30"},
		{"0.4", "2/5"},
		{"4e-1", "2/5"},
		{0.4, "2/5"},   // through the shortest decimal form, not 2^-53 noise
		{-0.06, "-3/50"},
		{1.1, "11/10"},
		{big.NewRat(7, 90), "7/90"},
	}
	for _, c := range cases {
		r, err := FromInterface(c.in)
		require.NoError(t, err, "converting %v", c.in)
		assert.Equal(t, c.want, r.RatString(), "converting %v", c.in)
	}

	for _, bad := range []interface{}{"abc", "1/0x", struct{}{}, nil, (*big.Rat)(nil)} {
		_, err := FromInterface(bad)
		assert.ErrorIs(t, err, ErrNotRational, "converting %v", bad)
	}
}

func TestVectorDomainSupportRange(t *testing.T) {
	v := MustNew(map[string]interface{}{"a": "11/10", "b": "-1/2", "c": 0})

	assert.True(t, v.Domain().Equal(NewSet("a", "b", "c")))
	assert.True(t, v.Support().Equal(NewSet("a", "b")))
	assert.Equal(t, 3, v.Len())

	rs := v.Range()
	require.Len(t, rs, 3)
	assert.Equal(t, "-1/2", rs[0].RatString())
	assert.Equal(t, "0", rs[1].RatString())
	assert.Equal(t, "11/10", rs[2].RatString())

	// absent labels read as zero but stay outside the domain
	assert.Equal(t, 0, v.Value("d").Sign())
	assert.False(t, v.Has("d"))
}

func TestVectorArithmetic(t *testing.T) {
	v := MustNew(map[string]interface{}{"a": 1, "b": "-1/2"})
	w := MustNew(map[string]interface{}{"b": "3/5", "c": -2})

	sum := v.Add(w)
	assert.True(t, sum.Domain().Equal(NewSet("a", "b", "c")))
	assert.Equal(t, "1", sum.Value("a").RatString())
	assert.Equal(t, "1/10", sum.Value("b").RatString())
	assert.Equal(t, "-2", sum.Value("c").RatString())

	diff := v.Sub(w)
	assert.Equal(t, "-11/10", diff.Value("b").RatString())
	assert.Equal(t, "2", diff.Value("c").RatString())

	scaled := v.Scale(rat("2"))
	assert.Equal(t, "-1", scaled.Value("b").RatString())

	halved := v.Div(rat("2"))
	assert.Equal(t, "-1/4", halved.Value("b").RatString())

	assert.Panics(t, func() { v.Div(new(big.Rat)) })
}

func TestVectorImmutability(t *testing.T) {
	src := map[string]*big.Rat{"a": big.NewRat(1, 2)}
	v := FromRats(src)
	src["a"].SetInt64(99)
	assert.Equal(t, "1/2", v.Value("a").RatString())

	// mutating a returned value must not write through
	v.Value("a").SetInt64(5)
	assert.Equal(t, "1/2", v.Value("a").RatString())
}

func TestVectorEqualAndString(t *testing.T) {
	v := MustNew(map[string]interface{}{"a": 1, "b": 0})
	w := MustNew(map[string]interface{}{"b": 0, "a": "1"})
	u := MustNew(map[string]interface{}{"a": 1})

	assert.True(t, v.Equal(w))
	assert.Equal(t, v.String(), w.String())
	// explicit zero entries are part of the domain, so u differs
	assert.False(t, v.Equal(u))
	assert.Equal(t, "{a: 1, b: 0}", v.String())
}

func TestSetOps(t *testing.T) {
	s := NewSet("a", "b")
	o := NewSet("b", "c")

	assert.True(t, s.Union(o).Equal(NewSet("a", "b", "c")))
	assert.True(t, s.Inter(o).Equal(NewSet("b")))
	assert.True(t, s.Diff(o).Equal(NewSet("a")))
	assert.Empty(t, cmp.Diff([]string{"a", "b"}, s.Sorted()))
	assert.Empty(t, cmp.Diff([]string{"a", "b", "c"}, s.Union(o).Sorted()))
}

func TestPolytope(t *testing.T) {
	v := MustNew(map[string]interface{}{"a": 1})
	w := MustNew(map[string]interface{}{"b": 1, "c": "-1/2"})
	p := NewPolytope(v, w, v) // duplicate collapses

	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Contains(v))
	assert.True(t, p.Domain().Equal(NewSet("a", "b", "c")))

	q := NewPolytope(w)
	assert.True(t, p.Union(q).Equal(p))
	assert.False(t, p.Equal(q))
}
