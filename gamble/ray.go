package gamble

import (
	"errors"
	"math/big"

	"github.com/lowprev/credal/vector"
)

// ErrZeroRay is returned when a ray is requested for the identically-zero
// gamble, which has no direction.
var ErrZeroRay = errors.New("no ray from the identically-zero gamble")

// Ray is a direction in gamble space: a gamble restricted to its support
// and scaled to max-norm one. Rays are not closed under algebra; combining
// a ray with scalars or other gambles yields a plain Gamble, from which a
// ray may be derived again.
type Ray[X comparable] struct {
	g Gamble[X]
}

// NewRay returns the direction of f. It fails with ErrZeroRay when f is
// identically zero (including the empty-domain gamble).
func NewRay[X comparable](f Gamble[X]) (Ray[X], error) {
	g, ok := f.Restrict(f.Support()).Normalized()
	if !ok {
		return Ray[X]{}, ErrZeroRay
	}
	return Ray[X]{g: g}, nil
}

// MustRay is NewRay, panicking on the zero gamble. Intended for literals.
func MustRay[X comparable](f Gamble[X]) Ray[X] {
	r, err := NewRay(f)
	if err != nil {
		panic(err)
	}
	return r
}

// Gamble returns the underlying max-norm-one gamble.
func (r Ray[X]) Gamble() Gamble[X] { return r.g }

// Value returns the ray's value at x, zero outside its support.
func (r Ray[X]) Value(x X) *big.Rat { return r.g.Value(x) }

// Domain returns the ray's domain, which equals its support.
func (r Ray[X]) Domain() vector.Set[X] { return r.g.Domain() }

func (r Ray[X]) Len() int { return r.g.Len() }

func (r Ray[X]) Equal(o Ray[X]) bool { return r.g.Equal(o.g) }

func (r Ray[X]) String() string { return r.g.String() }
