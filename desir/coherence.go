package desir

import (
	"fmt"
	"math/big"

	"github.com/lowprev/credal/gamble"
	"github.com/lowprev/credal/internal/cdd"
	"github.com/lowprev/credal/logger"
	"github.com/lowprev/credal/mathprog"
	"github.com/lowprev/credal/vector"
)

// AvoidsSureLoss reports whether no non-negative combination of the
// assessment's generators is everywhere negative. The witness search is a
// single feasibility LP: combination values at most −1 on every element of
// the possibility space. The empty assessment vacuously avoids sure loss.
func (d *DesirSet[X]) AvoidsSureLoss() bool {
	rays := d.rays()
	xs := d.PSpace().Sorted()
	if len(rays) == 0 || len(xs) == 0 {
		return true
	}

	m := cdd.NewMatrix(1 + len(rays))
	for c := range rays {
		row := m.ZeroRow()
		row[1+c].SetInt64(1)
		m.AppendRow(row, false)
	}
	for _, x := range xs {
		row := m.ZeroRow()
		row[0].SetInt64(-1)
		for c, r := range rays {
			row[1+c].Neg(r.Value(x))
		}
		m.AppendRow(row, false)
	}

	return cdd.Solve(m).Status != cdd.StatusOptimal
}

// AvoidsPartialLoss reports whether no admissible combination of the
// assessment's generators is everywhere non-positive and somewhere
// negative. "Somewhere negative" is not a convex condition, so the search
// is an outer fixpoint over a shrinking candidate set A of witness
// elements; each iteration solves one LP with selector variables τ over A.
// The loop terminates because A strictly shrinks unless it exits. A
// non-optimal LP here violates the formulation's guarantees and panics.
func (d *DesirSet[X]) AvoidsPartialLoss() bool {
	rays := d.rays()
	pspace := d.PSpace()
	if len(rays) == 0 || len(pspace) == 0 {
		return true
	}
	xs := pspace.Sorted()
	n := len(rays)
	one := big.NewRat(1, 1)
	log := logger.Logger()

	candidates := pspace
	for len(candidates) > 0 {
		sel := candidates.Sorted()
		log.Debug().Int("candidates", len(sel)).Msg("partial-loss fixpoint iteration")

		m := cdd.NewMatrix(1 + n + len(sel))
		// μ ≥ 0, τ ≥ 0, τ ≤ 1.
		for c := 0; c < n+len(sel); c++ {
			row := m.ZeroRow()
			row[1+c].SetInt64(1)
			m.AppendRow(row, false)
		}
		for t := range sel {
			row := m.ZeroRow()
			row[0].SetInt64(1)
			row[1+n+t].SetInt64(-1)
			m.AppendRow(row, false)
		}
		// The combination is ≤ 0 everywhere, with slack τ_ω at candidates.
		for _, x := range xs {
			row := m.ZeroRow()
			for c, r := range rays {
				row[1+c].Neg(r.Value(x))
			}
			for t, w := range sel {
				if w == x {
					row[1+n+t].SetInt64(-1)
				}
			}
			m.AppendRow(row, false)
		}
		// Elements already excluded from A must not reappear: the
		// generators' contribution there is pinned to zero.
		for _, x := range xs {
			if candidates.Has(x) {
				continue
			}
			row := m.ZeroRow()
			for c, r := range rays {
				row[1+c].Set(r.Value(x))
			}
			m.AppendRow(row, true)
		}

		obj := m.ZeroRow()
		for t := range sel {
			obj[1+n+t].SetInt64(1)
		}
		m.SetObjective(obj, cdd.Maximize)

		res := cdd.Solve(m)
		if res.Status != cdd.StatusOptimal {
			panic(fmt.Sprintf("desir: partial-loss LP ended %s, formulation guarantees optimality", res.Status))
		}
		tau := res.Primal[n:]

		next := make(vector.Set[X])
		allOne := true
		anyPositive := false
		for t, w := range sel {
			if tau[t].Sign() != 0 {
				anyPositive = true
			}
			if tau[t].Cmp(one) == 0 {
				next[w] = struct{}{}
			} else {
				allOne = false
			}
		}
		if !anyPositive {
			return true
		}
		if allOne {
			return false
		}
		candidates = next
	}
	return true
}

// LowerExpectation returns the tight lower expectation bound the
// assessment puts on the gamble; the gamble's domain is the conditioning
// event. A non-optimal LP status surfaces as a *mathprog.StatusError.
func (d *DesirSet[X]) LowerExpectation(f gamble.Gamble[X]) (*big.Rat, error) {
	rays := d.rays()
	dom := f.Domain()
	xs := d.PSpace().Union(dom).Sorted()
	n := len(rays)

	// Variables: the bound t, then one multiplier per generator; t is the
	// best value with f − t·1_dom dominating some admissible combination.
	m := cdd.NewMatrix(1 + 1 + n)
	for c := 0; c < n; c++ {
		row := m.ZeroRow()
		row[2+c].SetInt64(1)
		m.AppendRow(row, false)
	}
	for _, x := range xs {
		row := m.ZeroRow()
		row[0].Set(f.Value(x))
		if dom.Has(x) {
			row[1].SetInt64(-1)
		}
		for c, r := range rays {
			row[2+c].Neg(r.Value(x))
		}
		m.AppendRow(row, false)
	}
	obj := m.ZeroRow()
	obj[1].SetInt64(1)
	m.SetObjective(obj, cdd.Maximize)

	res := cdd.Solve(m)
	if res.Status != cdd.StatusOptimal {
		return nil, &mathprog.StatusError{Status: res.Status.String()}
	}
	return res.ObjValue, nil
}

// UpperExpectation returns the tight upper expectation bound, by conjugacy
// the negation of the lower expectation of the negated gamble.
func (d *DesirSet[X]) UpperExpectation(f gamble.Gamble[X]) (*big.Rat, error) {
	low, err := d.LowerExpectation(f.Neg())
	if err != nil {
		return nil, err
	}
	return low.Neg(low), nil
}
