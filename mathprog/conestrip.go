package mathprog

import (
	"math/big"

	"github.com/lowprev/credal/internal/cdd"
	"github.com/lowprev/credal/logger"
	"github.com/lowprev/credal/vector"
)

// coneEntry is one generator set of the working collection. The reference
// vector travels as an extra singleton cone holding −h, so the cone
// equality Σ μ·v = μ_h·h falls out of the homogeneous constraint.
type coneEntry[X comparable] struct {
	poly vector.Polytope[X]
	gens []vector.Vector[X]
	isH  bool
}

// Feasible runs the CONEstrip procedure on the collection of generator
// sets d with optional reference vector h (nil for none). It returns the
// maximal sub-collection of cones that stays active in some positive
// combination matching h, in input order; an empty result means the
// problem is infeasible. Non-optimal LP statuses also yield the empty
// result: infeasibility is an expected outcome here, not an error.
func Feasible[X comparable](d []vector.Polytope[X], h *vector.Vector[X]) []vector.Polytope[X] {
	entries := dedupe(d)
	if h != nil {
		hp := vector.NewPolytope(h.Neg())
		entries = append(entries, coneEntry[X]{poly: hp, gens: hp.Vectors(), isH: true})
	}
	coords := domainUnion(entries)
	log := logger.Logger()

	for len(entries) > 0 {
		k := len(entries)
		l := 0
		for _, e := range entries {
			l += len(e.gens)
		}
		log.Debug().Int("cones", k).Int("generators", l).Msg("conestrip iteration")

		res := cdd.Solve(stripProgram(entries, coords, l, h != nil))
		if res.Status != cdd.StatusOptimal {
			return nil
		}
		mu, tau := res.Primal[:l], res.Primal[l:]

		one := big.NewRat(1, 1)
		var selected []coneEntry[X]
		stable := true
		off := 0
		for n, e := range entries {
			if tau[n].Cmp(one) == 0 {
				selected = append(selected, e)
			} else {
				for m := range e.gens {
					if mu[off+m].Sign() != 0 {
						stable = false
					}
				}
			}
			off += len(e.gens)
		}
		if stable {
			return strip(selected)
		}
		entries = selected
	}
	return nil
}

// Maximize optimizes a linear objective over the positive combinations
// matching h, restricted to the cones Feasible keeps active. It fails with
// a StatusError when the first stage is infeasible or the second-stage LP
// ends non-optimal.
func Maximize[X comparable](d []vector.Polytope[X], h *vector.Vector[X], obj Objective[X]) (*big.Rat, error) {
	e := Feasible(d, h)
	if len(e) == 0 {
		return nil, &StatusError{Status: "infeasible"}
	}

	entries := dedupe(e)
	coords := domainUnion(entries)
	if h != nil {
		coords = coords.Union(h.Domain())
	}
	xs := coords.Sorted()
	l := 0
	for _, en := range entries {
		l += len(en.gens)
	}

	m := cdd.NewMatrix(1 + l)
	for _, x := range xs {
		row := m.ZeroRow()
		if h != nil {
			row[0].Neg(h.Value(x))
		}
		c := 1
		for _, en := range entries {
			for _, v := range en.gens {
				row[c].Set(v.Value(x))
				c++
			}
		}
		m.AppendRow(row, true)
	}
	for c := 0; c < l; c++ {
		row := m.ZeroRow()
		row[1+c].SetInt64(1)
		m.AppendRow(row, false)
	}

	objRow := m.ZeroRow()
	if obj.Constant != nil {
		objRow[0].Set(obj.Constant)
	}
	c := 1
	for _, en := range entries {
		for _, v := range en.gens {
			if obj.Coeff != nil {
				if w := obj.Coeff(v); w != nil {
					objRow[c].Set(w)
				}
			}
			c++
		}
	}
	m.SetObjective(objRow, cdd.Maximize)

	res := cdd.Solve(m)
	if res.Status != cdd.StatusOptimal {
		return nil, &StatusError{Status: res.Status.String()}
	}
	return res.ObjValue, nil
}

// Objective is a linear objective over generators: Constant plus, for each
// generator v with multiplier μ_v, Coeff(v)·μ_v. A nil Constant or Coeff
// reads as zero.
type Objective[X comparable] struct {
	Constant *big.Rat
	Coeff    func(v vector.Vector[X]) *big.Rat
}

// stripProgram builds one iteration's LP: variables are the generator
// multipliers μ (grouped by cone) followed by the cone selectors τ.
func stripProgram[X comparable](entries []coneEntry[X], coords vector.Set[X], l int, withH bool) *cdd.Matrix {
	k := len(entries)
	m := cdd.NewMatrix(1 + l + k)

	// Σ μ·v vanishes on every coordinate; −h rides along as a generator.
	for _, x := range coords.Sorted() {
		row := m.ZeroRow()
		c := 1
		for _, e := range entries {
			for _, v := range e.gens {
				row[c].Set(v.Value(x))
				c++
			}
		}
		m.AppendRow(row, true)
	}
	// μ ≥ 0.
	for c := 0; c < l; c++ {
		row := m.ZeroRow()
		row[1+c].SetInt64(1)
		m.AppendRow(row, false)
	}
	// 0 ≤ τ ≤ 1.
	for n := 0; n < k; n++ {
		row := m.ZeroRow()
		row[1+l+n].SetInt64(1)
		m.AppendRow(row, false)

		row = m.ZeroRow()
		row[0].SetInt64(1)
		row[1+l+n].SetInt64(-1)
		m.AppendRow(row, false)
	}
	// At least one cone selected.
	row := m.ZeroRow()
	row[0].SetInt64(-1)
	for n := 0; n < k; n++ {
		row[1+l+n].SetInt64(1)
	}
	m.AppendRow(row, false)
	// A cone is active only when every one of its generators carries
	// weight: τ_A ≤ μ_{A,v}.
	c := 0
	for n, e := range entries {
		for range e.gens {
			row := m.ZeroRow()
			row[1+c].SetInt64(1)
			row[1+l+n].SetInt64(-1)
			m.AppendRow(row, false)
			c++
		}
	}
	// The reference generator's multiplier is forced off zero; if its cone
	// was pruned the row is unsatisfiable and the LP reports infeasible.
	if withH {
		row := m.ZeroRow()
		row[0].SetInt64(-1)
		c := 1
		for _, e := range entries {
			for range e.gens {
				if e.isH {
					row[c].SetInt64(1)
				}
				c++
			}
		}
		m.AppendRow(row, false)
	}

	obj := m.ZeroRow()
	for n := 0; n < k; n++ {
		obj[1+l+n].SetInt64(1)
	}
	m.SetObjective(obj, cdd.Maximize)
	return m
}

func dedupe[X comparable](d []vector.Polytope[X]) []coneEntry[X] {
	seen := make(map[string]struct{}, len(d))
	entries := make([]coneEntry[X], 0, len(d))
	for _, p := range d {
		key := p.String()
		if _, ok := seen[key]; ok || p.Len() == 0 {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, coneEntry[X]{poly: p, gens: p.Vectors()})
	}
	return entries
}

func domainUnion[X comparable](entries []coneEntry[X]) vector.Set[X] {
	s := make(vector.Set[X])
	for _, e := range entries {
		s = s.Union(e.poly.Domain())
	}
	return s
}

// strip drops the reference cone from a result collection.
func strip[X comparable](entries []coneEntry[X]) []vector.Polytope[X] {
	var out []vector.Polytope[X]
	for _, e := range entries {
		if !e.isH {
			out = append(out, e.poly)
		}
	}
	return out
}
