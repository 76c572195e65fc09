package gamble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowprev/credal/vector"
)

func TestNewRay(t *testing.T) {
	f := MustNew(map[string]interface{}{"a": 5, "b": -1, "c": 0})
	r, err := NewRay(f)
	require.NoError(t, err)

	// domain shrinks to the support, values scale to max-norm one
	assert.True(t, r.Domain().Equal(vector.NewSet("a", "b")))
	assert.Equal(t, "1", r.Value("a").RatString())
	assert.Equal(t, "-1/5", r.Value("b").RatString())
	assert.Equal(t, "0", r.Value("c").RatString())
}

func TestNewRayZero(t *testing.T) {
	_, err := NewRay(MustNew(map[string]interface{}{"a": 0, "b": 0}))
	assert.ErrorIs(t, err, ErrZeroRay)

	var empty Gamble[string]
	_, err = NewRay(empty)
	assert.ErrorIs(t, err, ErrZeroRay)

	assert.Panics(t, func() { MustRay(MustNew(map[string]interface{}{"a": 0})) })
}

func TestRayProportionalityCollapse(t *testing.T) {
	f := MustNew(map[string]interface{}{"a": 2, "b": -1})
	g := f.Scale(rat("7"))

	rf := MustRay(f)
	rg := MustRay(g)
	assert.True(t, rf.Equal(rg))

	// opposite directions stay distinct
	rn := MustRay(f.Neg())
	assert.False(t, rf.Equal(rn))
}

func TestConeCollapsesProportionalGenerators(t *testing.T) {
	f := MustNew(map[string]interface{}{"a": 1, "b": 1})
	g := f.Scale(rat("7"))
	h := MustNew(map[string]interface{}{"a": 1, "b": -1})

	c := MustCone(f, g, h)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(MustRay(f)))
	assert.True(t, c.Contains(MustRay(h)))
	assert.False(t, c.Contains(MustRay(h.Neg())))
}

func TestConeZeroGenerator(t *testing.T) {
	_, err := NewCone(
		MustNew(map[string]interface{}{"a": 1}),
		MustNew(map[string]interface{}{"a": 0}),
	)
	assert.ErrorIs(t, err, ErrZeroRay)
}

func TestConeUnionDomainPolytope(t *testing.T) {
	c := MustCone(MustNew(map[string]interface{}{"a": 1, "b": 2}))
	d := MustCone(MustNew(map[string]interface{}{"b": -3, "c": 1}))

	u := c.Union(d)
	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Domain().Equal(vector.NewSet("a", "b", "c")))

	p := u.Polytope()
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Domain().Equal(vector.NewSet("a", "b", "c")))

	assert.True(t, u.Equal(d.Union(c)))
	assert.False(t, u.Equal(c))
}

func TestConeRaysCanonicalOrder(t *testing.T) {
	c := MustCone(
		MustNew(map[string]interface{}{"b": 1}),
		MustNew(map[string]interface{}{"a": 1}),
	)
	rs := c.Rays()
	require.Len(t, rs, 2)
	assert.Equal(t, "{a: 1}", rs[0].String())
	assert.Equal(t, "{b: 1}", rs[1].String())
}
