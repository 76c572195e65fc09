package gamble

import (
	"sort"
	"strings"

	"github.com/lowprev/credal/vector"
)

// Cone is an immutable finite set of rays, the generators of a non-negative
// conic hull. Membership is value equality.
type Cone[X comparable] struct {
	rays map[string]Ray[X]
}

// NewCone returns the cone generated by the directions of the given
// gambles. It fails with ErrZeroRay if any of them is identically zero.
func NewCone[X comparable](gs ...Gamble[X]) (Cone[X], error) {
	rays := make([]Ray[X], len(gs))
	for i, g := range gs {
		r, err := NewRay(g)
		if err != nil {
			return Cone[X]{}, err
		}
		rays[i] = r
	}
	return ConeOfRays(rays...), nil
}

// MustCone is NewCone, panicking on a zero gamble. Intended for literals.
func MustCone[X comparable](gs ...Gamble[X]) Cone[X] {
	c, err := NewCone(gs...)
	if err != nil {
		panic(err)
	}
	return c
}

// ConeOfRays returns the cone generated by the given rays. Duplicates
// collapse.
func ConeOfRays[X comparable](rs ...Ray[X]) Cone[X] {
	c := Cone[X]{rays: make(map[string]Ray[X], len(rs))}
	for _, r := range rs {
		c.rays[r.String()] = r
	}
	return c
}

func (c Cone[X]) Len() int { return len(c.rays) }

func (c Cone[X]) Contains(r Ray[X]) bool {
	_, ok := c.rays[r.String()]
	return ok
}

// Rays returns the generators in canonical order.
func (c Cone[X]) Rays() []Ray[X] {
	keys := make([]string, 0, len(c.rays))
	for k := range c.rays {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rs := make([]Ray[X], len(keys))
	for i, k := range keys {
		rs[i] = c.rays[k]
	}
	return rs
}

// Domain returns the union of the generators' domains.
func (c Cone[X]) Domain() vector.Set[X] {
	s := make(vector.Set[X])
	for _, r := range c.rays {
		s = s.Union(r.Domain())
	}
	return s
}

// Union returns the cone generated by both cones' rays.
func (c Cone[X]) Union(o Cone[X]) Cone[X] {
	u := Cone[X]{rays: make(map[string]Ray[X], len(c.rays)+len(o.rays))}
	for k, r := range c.rays {
		u.rays[k] = r
	}
	for k, r := range o.rays {
		u.rays[k] = r
	}
	return u
}

// Polytope returns the generators as a plain vector polytope.
func (c Cone[X]) Polytope() vector.Polytope[X] {
	vs := make([]vector.Vector[X], 0, len(c.rays))
	for _, r := range c.rays {
		vs = append(vs, r.Gamble().Vector)
	}
	return vector.NewPolytope(vs...)
}

func (c Cone[X]) Equal(o Cone[X]) bool {
	if len(c.rays) != len(o.rays) {
		return false
	}
	for k := range c.rays {
		if _, ok := o.rays[k]; !ok {
			return false
		}
	}
	return true
}

func (c Cone[X]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range c.Rays() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
