package massfunc

import (
	"errors"
	"math/big"

	"github.com/lowprev/credal/gamble"
	"github.com/lowprev/credal/vector"
)

var (
	// ErrNegativeMass is returned when a mass function is built from a
	// mapping with a negative value.
	ErrNegativeMass = errors.New("mass function values must be non-negative")
	// ErrZeroMass is returned when a mass function is built from a mapping
	// with zero total mass.
	ErrZeroMass = errors.New("mass function must have positive total mass")
)

// MassFunc is an immutable probability mass function: non-negative exact
// rationals summing to one. Construction sum-normalizes its input and drops
// zero entries, so the domain equals the support.
type MassFunc[X comparable] struct {
	v vector.Vector[X]
}

// New builds a mass function from a mapping of labels to non-negative
// numeric literals, applying sum-normalization.
func New[X comparable](entries map[X]interface{}) (MassFunc[X], error) {
	v, err := vector.New(entries)
	if err != nil {
		return MassFunc[X]{}, err
	}
	return FromVector(v)
}

// MustNew is New, panicking on invalid input. Intended for literals.
func MustNew[X comparable](entries map[X]interface{}) MassFunc[X] {
	p, err := New(entries)
	if err != nil {
		panic(err)
	}
	return p
}

// FromVector sum-normalizes a non-negative vector into a mass function.
func FromVector[X comparable](v vector.Vector[X]) (MassFunc[X], error) {
	total := new(big.Rat)
	for x := range v.Domain() {
		e := v.Value(x)
		if e.Sign() < 0 {
			return MassFunc[X]{}, ErrNegativeMass
		}
		total.Add(total, e)
	}
	if total.Sign() == 0 {
		return MassFunc[X]{}, ErrZeroMass
	}
	m := make(map[X]*big.Rat)
	for x := range v.Support() {
		m[x] = new(big.Rat).Quo(v.Value(x), total)
	}
	return MassFunc[X]{v: vector.FromRats(m)}, nil
}

// PointMass returns the degenerate mass function at x.
func PointMass[X comparable](x X) MassFunc[X] {
	return MassFunc[X]{v: vector.FromRats(map[X]*big.Rat{x: big.NewRat(1, 1)})}
}

// Value returns the mass at x, zero outside the support.
func (p MassFunc[X]) Value(x X) *big.Rat { return p.v.Value(x) }

// Domain returns the support of the mass function.
func (p MassFunc[X]) Domain() vector.Set[X] { return p.v.Domain() }

func (p MassFunc[X]) Len() int { return p.v.Len() }

// Vector returns the underlying vector.
func (p MassFunc[X]) Vector() vector.Vector[X] { return p.v }

// Expectation returns the expected value of the gamble under p.
func (p MassFunc[X]) Expectation(f gamble.Gamble[X]) *big.Rat {
	e := new(big.Rat)
	for x := range p.v.Domain() {
		e.Add(e, new(big.Rat).Mul(p.v.Value(x), f.Value(x)))
	}
	return e
}

// Condition returns the mass function conditional on the event. The second
// result is false when the event carries no mass, in which case conditioning
// is undefined.
func (p MassFunc[X]) Condition(event vector.Set[X]) (MassFunc[X], bool) {
	q, err := FromVector(gamble.FromVector(p.v).Restrict(event).Vector)
	if err != nil {
		return MassFunc[X]{}, false
	}
	return q, true
}

func (p MassFunc[X]) Equal(o MassFunc[X]) bool { return p.v.Equal(o.v) }

func (p MassFunc[X]) String() string { return p.v.String() }
