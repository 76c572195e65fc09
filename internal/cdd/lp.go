package cdd

import (
	"math/big"

	"github.com/lowprev/credal/logger"
)

// LPResult is the outcome of Solve. ObjValue and Primal are set only when
// Status is StatusOptimal; Primal holds one rational per matrix variable,
// in column order.
type LPResult struct {
	Status   Status
	ObjValue *big.Rat
	Primal   []*big.Rat
}

// lpTableau is a dense simplex tableau over exact rationals. Columns are,
// in order: u (positive parts), w (negative parts), one slack per
// inequality row, one artificial per row. Free variables are split as
// x = u − w.
type lpTableau struct {
	a     [][]*big.Rat
	rhs   []*big.Rat
	basis []int

	nVars int // free variables of the original program
	nReal int // u + w + slacks; artificials start here
	nCols int
}

// Solve runs an exact two-phase simplex on the matrix. Bland's rule makes
// the pivot sequence deterministic and cycle-free, so Solve terminates on
// every input.
func Solve(m *Matrix) *LPResult {
	n := m.cols - 1
	nIneq := 0
	for i := range m.rows {
		if !m.lin.Test(uint(i)) {
			nIneq++
		}
	}
	nReal := 2*n + nIneq
	t := &lpTableau{
		nVars: n,
		nReal: nReal,
		nCols: nReal + len(m.rows),
	}

	// Standard form: a·u − a·w (− s) = −b per row, right-hand sides made
	// non-negative by row negation.
	slack := 0
	for i, row := range m.rows {
		tr := make([]*big.Rat, t.nCols)
		for c := range tr {
			tr[c] = new(big.Rat)
		}
		for j := 0; j < n; j++ {
			tr[j].Set(row[j+1])
			tr[n+j].Neg(row[j+1])
		}
		if !m.lin.Test(uint(i)) {
			tr[2*n+slack].SetInt64(-1)
			slack++
		}
		rhs := new(big.Rat).Neg(row[0])
		if rhs.Sign() < 0 {
			rhs.Neg(rhs)
			for c := 0; c < nReal; c++ {
				tr[c].Neg(tr[c])
			}
		}
		tr[nReal+i].SetInt64(1)
		t.a = append(t.a, tr)
		t.rhs = append(t.rhs, rhs)
		t.basis = append(t.basis, nReal+i)
	}

	// Phase 1: drive the artificials to zero.
	phase1 := make([]*big.Rat, t.nCols)
	for c := range phase1 {
		phase1[c] = new(big.Rat)
		if c >= nReal {
			phase1[c].SetInt64(1)
		}
	}
	t.priceOut(phase1)
	if !t.minimize(phase1, t.nCols) {
		panic("cdd: phase 1 cannot be unbounded")
	}
	if t.artificialSum().Sign() != 0 {
		return &LPResult{Status: StatusInconsistent}
	}
	t.dropArtificials()

	// Phase 2 on the caller's objective.
	cost := make([]*big.Rat, t.nCols)
	for c := range cost {
		cost[c] = new(big.Rat)
	}
	for j := 0; j < n; j++ {
		cost[j].Set(m.obj[j+1])
		cost[n+j].Neg(m.obj[j+1])
		if m.objSense == Maximize {
			cost[j].Neg(cost[j])
			cost[n+j].Neg(cost[n+j])
		}
	}
	t.priceOut(cost)
	if !t.minimize(cost, nReal) {
		return &LPResult{Status: StatusUnbounded}
	}

	primal := make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		primal[j] = new(big.Rat).Sub(t.colValue(j), t.colValue(n+j))
	}
	obj := new(big.Rat).Set(m.obj[0])
	for j := 0; j < n; j++ {
		obj.Add(obj, new(big.Rat).Mul(m.obj[j+1], primal[j]))
	}
	log := logger.Logger()
	log.Trace().Int("rows", len(m.rows)).Int("vars", n).Msg("lp solved")
	return &LPResult{Status: StatusOptimal, ObjValue: obj, Primal: primal}
}

// minimize runs Bland-rule pivots on the cost vector, considering entering
// columns below lim only. It returns false when the program is unbounded.
// The cost vector must be priced out for the current basis beforehand and
// is kept priced out across pivots.
func (t *lpTableau) minimize(cost []*big.Rat, lim int) bool {
	for {
		enter := -1
		for c := 0; c < lim; c++ {
			if cost[c].Sign() < 0 {
				enter = c
				break
			}
		}
		if enter == -1 {
			return true
		}
		leave := -1
		ratio := new(big.Rat)
		for r := range t.a {
			if t.a[r][enter].Sign() <= 0 {
				continue
			}
			q := new(big.Rat).Quo(t.rhs[r], t.a[r][enter])
			if leave == -1 || q.Cmp(ratio) < 0 ||
				(q.Cmp(ratio) == 0 && t.basis[r] < t.basis[leave]) {
				leave = r
				ratio = q
			}
		}
		if leave == -1 {
			return false
		}
		t.pivot(leave, enter)
		t.priceOutCol(cost, enter)
	}
}

// pivot makes column c basic in row r.
func (t *lpTableau) pivot(r, c int) {
	p := new(big.Rat).Set(t.a[r][c])
	for j := 0; j < t.nCols; j++ {
		t.a[r][j].Quo(t.a[r][j], p)
	}
	t.rhs[r].Quo(t.rhs[r], p)
	for i := range t.a {
		if i == r || t.a[i][c].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Set(t.a[i][c])
		for j := 0; j < t.nCols; j++ {
			t.a[i][j].Sub(t.a[i][j], new(big.Rat).Mul(f, t.a[r][j]))
		}
		t.rhs[i].Sub(t.rhs[i], new(big.Rat).Mul(f, t.rhs[r]))
	}
	t.basis[r] = c
}

// priceOut reduces the cost vector against the whole current basis.
func (t *lpTableau) priceOut(cost []*big.Rat) {
	for r := range t.a {
		t.priceOutRow(cost, r)
	}
}

// priceOutCol re-reduces the cost vector after column c entered the basis.
func (t *lpTableau) priceOutCol(cost []*big.Rat, c int) {
	for r := range t.a {
		if t.basis[r] == c {
			t.priceOutRow(cost, r)
			return
		}
	}
}

func (t *lpTableau) priceOutRow(cost []*big.Rat, r int) {
	f := new(big.Rat).Set(cost[t.basis[r]])
	if f.Sign() == 0 {
		return
	}
	for j := 0; j < t.nCols; j++ {
		cost[j].Sub(cost[j], new(big.Rat).Mul(f, t.a[r][j]))
	}
}

// artificialSum evaluates the phase-1 objective at the current basic
// solution: non-basic artificials are zero, basic ones read their rhs.
func (t *lpTableau) artificialSum() *big.Rat {
	v := new(big.Rat)
	for r := range t.a {
		if t.basis[r] >= t.nReal {
			v.Add(v, t.rhs[r])
		}
	}
	return v
}

// dropArtificials pivots zero-valued basic artificials out of the basis and
// discards rows that turn out redundant.
func (t *lpTableau) dropArtificials() {
	for r := 0; r < len(t.a); r++ {
		if t.basis[r] < t.nReal {
			continue
		}
		pivoted := false
		for c := 0; c < t.nReal; c++ {
			if t.a[r][c].Sign() != 0 {
				t.pivot(r, c)
				pivoted = true
				break
			}
		}
		if !pivoted {
			t.a = append(t.a[:r], t.a[r+1:]...)
			t.rhs = append(t.rhs[:r], t.rhs[r+1:]...)
			t.basis = append(t.basis[:r], t.basis[r+1:]...)
			r--
		}
	}
	// Artificials are gone from the basis; zero their columns so no later
	// pivot can bring them back.
	for i := range t.a {
		for c := t.nReal; c < t.nCols; c++ {
			t.a[i][c].SetInt64(0)
		}
	}
}

// colValue returns the value of a column in the current basic solution.
func (t *lpTableau) colValue(c int) *big.Rat {
	for r := range t.a {
		if t.basis[r] == c {
			return new(big.Rat).Set(t.rhs[r])
		}
	}
	return new(big.Rat)
}
