package gamble

import (
	"math/big"

	"github.com/lowprev/credal/vector"
)

// Gamble is an immutable bounded rational-valued payoff function. Its domain
// is read as its possibility space; labels outside the domain evaluate to
// zero.
type Gamble[X comparable] struct {
	vector.Vector[X]
}

// New builds a gamble from a mapping of labels to numeric literals.
func New[X comparable](entries map[X]interface{}) (Gamble[X], error) {
	v, err := vector.New(entries)
	if err != nil {
		return Gamble[X]{}, err
	}
	return Gamble[X]{v}, nil
}

// MustNew is New, panicking on conversion failure. Intended for literals.
func MustNew[X comparable](entries map[X]interface{}) Gamble[X] {
	g, err := New(entries)
	if err != nil {
		panic(err)
	}
	return g
}

// FromVector reinterprets a vector as a gamble.
func FromVector[X comparable](v vector.Vector[X]) Gamble[X] {
	return Gamble[X]{v}
}

// Indicator returns the gamble worth one on every label of the event.
func Indicator[X comparable](event vector.Set[X]) Gamble[X] {
	one := big.NewRat(1, 1)
	m := make(map[X]*big.Rat, len(event))
	for x := range event {
		m[x] = one
	}
	return Gamble[X]{vector.FromRats(m)}
}

// Add returns the pointwise sum over the union of both domains.
func (g Gamble[X]) Add(o Gamble[X]) Gamble[X] {
	return Gamble[X]{g.Vector.Add(o.Vector)}
}

// Sub returns the pointwise difference over the union of both domains.
func (g Gamble[X]) Sub(o Gamble[X]) Gamble[X] {
	return Gamble[X]{g.Vector.Sub(o.Vector)}
}

// Mul returns the pointwise product over the union of both domains.
func (g Gamble[X]) Mul(o Gamble[X]) Gamble[X] {
	m := make(map[X]*big.Rat)
	for x := range g.Domain().Union(o.Domain()) {
		m[x] = new(big.Rat).Mul(g.Value(x), o.Value(x))
	}
	return Gamble[X]{vector.FromRats(m)}
}

// AddScalar adds c to every value of the gamble's domain.
func (g Gamble[X]) AddScalar(c *big.Rat) Gamble[X] {
	m := make(map[X]*big.Rat)
	for x := range g.Domain() {
		m[x] = new(big.Rat).Add(g.Value(x), c)
	}
	return Gamble[X]{vector.FromRats(m)}
}

// SubScalar subtracts c from every value of the gamble's domain.
func (g Gamble[X]) SubScalar(c *big.Rat) Gamble[X] {
	return g.AddScalar(new(big.Rat).Neg(c))
}

func (g Gamble[X]) Scale(c *big.Rat) Gamble[X] {
	return Gamble[X]{g.Vector.Scale(c)}
}

// Div divides every value by the scalar c. It panics if c is zero.
func (g Gamble[X]) Div(c *big.Rat) Gamble[X] {
	return Gamble[X]{g.Vector.Div(c)}
}

func (g Gamble[X]) Neg() Gamble[X] {
	return Gamble[X]{g.Vector.Neg()}
}

// Restrict returns the gamble with domain set to the event: values outside
// the original domain extend with zero, values outside the event drop.
func (g Gamble[X]) Restrict(event vector.Set[X]) Gamble[X] {
	m := make(map[X]*big.Rat, len(event))
	for x := range event {
		m[x] = g.Value(x)
	}
	return Gamble[X]{vector.FromRats(m)}
}

// Product is a label of a cartesian-product possibility space.
type Product[X, Y comparable] struct {
	Left  X
	Right Y
}

// Cylinder returns the cylindrical extension of f to the product of its
// domain with the event: the value at (x, y) is f(x) for every y.
func Cylinder[X, Y comparable](f Gamble[X], event vector.Set[Y]) Gamble[Product[X, Y]] {
	m := make(map[Product[X, Y]]*big.Rat, f.Len()*len(event))
	for x := range f.Domain() {
		v := f.Value(x)
		for y := range event {
			m[Product[X, Y]{x, y}] = v
		}
	}
	return Gamble[Product[X, Y]]{vector.FromRats(m)}
}

// Bounds returns the minimum and maximum values of the gamble, or (0, 0)
// for the gamble with empty domain.
func (g Gamble[X]) Bounds() (min, max *big.Rat) {
	rs := g.Range()
	if len(rs) == 0 {
		return new(big.Rat), new(big.Rat)
	}
	return new(big.Rat).Set(rs[0]), new(big.Rat).Set(rs[len(rs)-1])
}

// Norm returns the max-norm of the gamble.
func (g Gamble[X]) Norm() *big.Rat {
	min, max := g.Bounds()
	if min.Neg(min).Cmp(max) > 0 {
		return min
	}
	return max
}

// Normalized returns the gamble divided by its max-norm. The second result
// is false when the norm is zero: the zero gamble has no normalized
// version, and callers must not treat the returned value as one.
func (g Gamble[X]) Normalized() (Gamble[X], bool) {
	n := g.Norm()
	if n.Sign() == 0 {
		return g, false
	}
	return g.Div(n), true
}

// ScaledShifted returns (g − min g)/(max g − min g), the zero gamble when g
// is constant.
func (g Gamble[X]) ScaledShifted() Gamble[X] {
	min, max := g.Bounds()
	scale := new(big.Rat).Sub(max, min)
	shifted := g.SubScalar(min)
	if scale.Sign() == 0 {
		return shifted
	}
	return shifted.Div(scale)
}

func (g Gamble[X]) Equal(o Gamble[X]) bool {
	return g.Vector.Equal(o.Vector)
}
