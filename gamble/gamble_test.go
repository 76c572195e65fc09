package gamble

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowprev/credal/vector"
)

func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}
	return r
}

func TestGambleAlgebra(t *testing.T) {
	f := MustNew(map[string]interface{}{"a": 1.1, "b": "-1/2", "c": 0})
	g := MustNew(map[string]interface{}{"b": ".6", "c": -2, "d": 0.0})

	// (0.3·f − g) / 2 over the union of domains
	h := f.Scale(rat("3/10")).Sub(g).Div(rat("2"))
	assert.Equal(t, "33/200", h.Value("a").RatString())
	assert.Equal(t, "-3/8", h.Value("b").RatString())
	assert.Equal(t, "1", h.Value("c").RatString())
	assert.Equal(t, "0", h.Value("d").RatString())
	assert.True(t, h.Domain().Equal(vector.NewSet("a", "b", "c", "d")))

	// pointwise multiplication, also over the union
	p := f.Mul(g)
	assert.Equal(t, "0", p.Value("a").RatString())
	assert.Equal(t, "-3/10", p.Value("b").RatString())
	assert.Equal(t, "0", p.Value("c").RatString())
	assert.True(t, p.Has("d"))

	// scalar addition stays on the gamble's own domain
	q := f.Neg().SubScalar(rat("3"))
	assert.Equal(t, "-41/10", q.Value("a").RatString())
	assert.Equal(t, "-5/2", q.Value("b").RatString())
	assert.Equal(t, "-3", q.Value("c").RatString())
	assert.False(t, q.Has("d"))
}

func TestGambleRestrict(t *testing.T) {
	f := MustNew(map[string]interface{}{"a": 1.1, "b": "-1/2", "c": 0})

	r := f.Restrict(vector.NewSet("a", "b"))
	assert.True(t, r.Domain().Equal(vector.NewSet("a", "b")))
	assert.Equal(t, "11/10", r.Value("a").RatString())

	// extension with zero for labels outside the original domain
	e := f.Restrict(vector.NewSet("a", "d"))
	assert.True(t, e.Domain().Equal(vector.NewSet("a", "d")))
	assert.Equal(t, "0", e.Value("d").RatString())
	assert.True(t, e.Has("d"))
}

func TestGambleCylinder(t *testing.T) {
	f := MustNew(map[string]interface{}{"a": 1.1, "b": "-1/2"})
	c := Cylinder(f, vector.NewSet("e", "f"))

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "11/10", c.Value(Product[string, string]{"a", "e"}).RatString())
	assert.Equal(t, "11/10", c.Value(Product[string, string]{"a", "f"}).RatString())
	assert.Equal(t, "-1/2", c.Value(Product[string, string]{"b", "e"}).RatString())
}

func TestGambleBoundsNorm(t *testing.T) {
	h := MustNew(map[string]interface{}{"a": 1, "b": 3, "c": 4})
	min, max := h.Bounds()
	assert.Equal(t, "1", min.RatString())
	assert.Equal(t, "4", max.RatString())
	assert.Equal(t, "4", h.Norm().RatString())

	neg := MustNew(map[string]interface{}{"a": -5, "b": 3})
	assert.Equal(t, "5", neg.Norm().RatString())

	var empty Gamble[string]
	min, max = empty.Bounds()
	assert.Equal(t, 0, min.Sign())
	assert.Equal(t, 0, max.Sign())
}

func TestGambleNormalized(t *testing.T) {
	h := MustNew(map[string]interface{}{"a": 1, "b": 3, "c": 4})
	n, ok := h.Normalized()
	require.True(t, ok)
	assert.Equal(t, "1/4", n.Value("a").RatString())
	assert.Equal(t, "1", n.Value("c").RatString())

	zero := MustNew(map[string]interface{}{"a": 0})
	_, ok = zero.Normalized()
	assert.False(t, ok)
}

func TestGambleScaledShifted(t *testing.T) {
	h := MustNew(map[string]interface{}{"a": 1, "b": 3, "c": 4})
	s := h.ScaledShifted()
	assert.Equal(t, "0", s.Value("a").RatString())
	assert.Equal(t, "2/3", s.Value("b").RatString())
	assert.Equal(t, "1", s.Value("c").RatString())

	// a constant gamble scales and shifts to the zero gamble
	c := MustNew(map[string]interface{}{"a": 7, "b": 7})
	z := c.ScaledShifted()
	assert.Equal(t, 0, z.Value("a").Sign())
	assert.Equal(t, 0, z.Value("b").Sign())
}

func TestIndicator(t *testing.T) {
	i := Indicator(vector.NewSet("a", "b"))
	assert.Equal(t, "1", i.Value("a").RatString())
	assert.Equal(t, "1", i.Value("b").RatString())
	assert.Equal(t, 2, i.Len())
}

func TestPointwiseSumProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	genGamble := gen.MapOf(gen.OneConstOf("a", "b", "c", "d"), gen.Int64Range(-50, 50)).
		Map(func(m map[string]int64) Gamble[string] {
			entries := make(map[string]interface{}, len(m))
			for k, v := range m {
				entries[k] = v
			}
			return MustNew(entries)
		})

	properties := gopter.NewProperties(parameters)
	properties.Property("(f+g)[x] == f[x]+g[x] on the domain union", prop.ForAll(
		func(f, g Gamble[string]) bool {
			sum := f.Add(g)
			if !sum.Domain().Equal(f.Domain().Union(g.Domain())) {
				return false
			}
			for x := range sum.Domain() {
				want := new(big.Rat).Add(f.Value(x), g.Value(x))
				if sum.Value(x).Cmp(want) != 0 {
					return false
				}
			}
			return true
		},
		genGamble, genGamble,
	))
	properties.Property("f+g == g+f", prop.ForAll(
		func(f, g Gamble[string]) bool {
			return f.Add(g).Equal(g.Add(f))
		},
		genGamble, genGamble,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
