package cdd

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// Generators is the generator representation of a polyhedron: rows in the
// package conventions (leading 1 for vertices, 0 for rays), with the Lin
// bitset marking bidirectional rows (a basis of the lineality space).
type Generators struct {
	Rows [][]*big.Rat
	Lin  *bitset.BitSet
}

// ddRay is a unidirectional generator candidate during enumeration. zero
// records the processed constraints it satisfies with equality; the
// combinatorial adjacency test runs on these sets.
type ddRay struct {
	v    []*big.Rat
	zero *bitset.BitSet
}

// PolyhedronGenerators converts the inequality representation held in the
// matrix into its generator representation by the double description
// method. The polyhedron is {x : b + a·x ≥ 0 per row, with equality on
// linear rows}; it is homogenized with a leading non-negative column, so
// the algorithm works on a cone whose generators map back to vertices and
// rays.
func PolyhedronGenerators(m *Matrix) *Generators {
	d := m.cols

	// Constraints on the homogenization cone: every matrix row, read as a
	// homogeneous inequality or equality over (x0, x), plus x0 ≥ 0.
	type constraint struct {
		c  []*big.Rat
		eq bool
	}
	cs := make([]constraint, 0, len(m.rows)+1)
	for i, row := range m.rows {
		cs = append(cs, constraint{c: row, eq: m.lin.Test(uint(i))})
	}
	x0 := make([]*big.Rat, d)
	for j := range x0 {
		x0[j] = new(big.Rat)
	}
	x0[0].SetInt64(1)
	cs = append(cs, constraint{c: x0})

	// Start from the whole space: the standard basis as lineality, no rays.
	lin := make([][]*big.Rat, d)
	for j := range lin {
		lin[j] = unitVec(d, j)
	}
	var rays []ddRay

	for k, con := range cs {
		// While a lineality vector violates the constraint's hyperplane,
		// the step is a projection, not a combination: pick one such
		// vector, project everything else along it, and keep it as a
		// unidirectional ray (oriented inward) unless the row is linear.
		pivot := -1
		for j, w := range lin {
			if dot(con.c, w).Sign() != 0 {
				pivot = j
				break
			}
		}
		if pivot >= 0 {
			v0 := lin[pivot]
			lin = append(lin[:pivot], lin[pivot+1:]...)
			cv0 := dot(con.c, v0)
			for _, w := range lin {
				project(w, v0, dot(con.c, w), cv0)
			}
			for _, r := range rays {
				project(r.v, v0, dot(con.c, r.v), cv0)
				r.zero.Set(uint(k))
			}
			if !con.eq {
				if cv0.Sign() < 0 {
					negate(v0)
				}
				// v0 lay in the lineality space, so it satisfies every
				// earlier constraint with equality.
				zero := bitset.New(uint(len(cs)))
				for i := 0; i < k; i++ {
					zero.Set(uint(i))
				}
				rays = append(rays, ddRay{v: v0, zero: zero})
			}
			continue
		}

		var plus, zero, minus []ddRay
		vals := make([]*big.Rat, len(rays))
		for i, r := range rays {
			vals[i] = dot(con.c, r.v)
			switch vals[i].Sign() {
			case 1:
				plus = append(plus, r)
			case 0:
				r.zero.Set(uint(k))
				zero = append(zero, r)
			case -1:
				minus = append(minus, r)
			}
		}

		next := zero
		if !con.eq {
			next = append(next, plus...)
		}
		for _, p := range plus {
			for _, q := range minus {
				if !adjacent(p, q, rays) {
					continue
				}
				// (c·p)·q − (c·q)·p lies on the hyperplane.
				cp, cq := dot(con.c, p.v), dot(con.c, q.v)
				nv := make([]*big.Rat, d)
				for j := 0; j < d; j++ {
					nv[j] = new(big.Rat).Sub(
						new(big.Rat).Mul(cp, q.v[j]),
						new(big.Rat).Mul(cq, p.v[j]),
					)
				}
				nz := p.zero.Intersection(q.zero)
				nz.Set(uint(k))
				next = append(next, ddRay{v: nv, zero: nz})
			}
		}
		rays = next
	}

	return assemble(lin, rays)
}

// adjacent implements the combinatorial adjacency test: p and q are
// adjacent iff no third ray satisfies with equality every constraint both
// of them do.
func adjacent(p, q ddRay, rays []ddRay) bool {
	common := p.zero.Intersection(q.zero)
	for _, r := range rays {
		if &r.v[0] == &p.v[0] || &r.v[0] == &q.v[0] {
			continue
		}
		if r.zero.IsSuperSet(common) {
			return false
		}
	}
	return true
}

// assemble de-homogenizes: rays with a positive leading coordinate scale to
// vertices, the rest stay rays; the remaining lineality basis comes out as
// linear rows (its leading coordinate is zero once x0 ≥ 0 is processed).
func assemble(lin [][]*big.Rat, rays []ddRay) *Generators {
	g := &Generators{Lin: bitset.New(uint(len(lin)))}
	for i, w := range lin {
		g.Rows = append(g.Rows, scaleCanonical(w))
		g.Lin.Set(uint(i))
	}
	for _, r := range rays {
		row := r.v
		if row[0].Sign() > 0 {
			t := new(big.Rat).Set(row[0])
			for j := range row {
				row[j] = new(big.Rat).Quo(row[j], t)
			}
		} else {
			row = scaleCanonical(row)
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// scaleCanonical divides a homogeneous row by its max-norm so equal
// directions render equally. Zero rows pass through.
func scaleCanonical(v []*big.Rat) []*big.Rat {
	max := new(big.Rat)
	for _, e := range v {
		a := new(big.Rat).Abs(e)
		if a.Cmp(max) > 0 {
			max = a
		}
	}
	if max.Sign() == 0 {
		return v
	}
	out := make([]*big.Rat, len(v))
	for j, e := range v {
		out[j] = new(big.Rat).Quo(e, max)
	}
	return out
}

func dot(a, b []*big.Rat) *big.Rat {
	s := new(big.Rat)
	for j := range a {
		s.Add(s, new(big.Rat).Mul(a[j], b[j]))
	}
	return s
}

// project replaces w by w − (cw/cv0)·v0, landing it on the hyperplane.
func project(w, v0 []*big.Rat, cw, cv0 *big.Rat) {
	if cw.Sign() == 0 {
		return
	}
	f := new(big.Rat).Quo(cw, cv0)
	for j := range w {
		w[j].Sub(w[j], new(big.Rat).Mul(f, v0[j]))
	}
}

func negate(v []*big.Rat) {
	for j := range v {
		v[j].Neg(v[j])
	}
}

func unitVec(d, j int) []*big.Rat {
	v := make([]*big.Rat, d)
	for i := range v {
		v[i] = new(big.Rat)
	}
	v[j].SetInt64(1)
	return v
}
