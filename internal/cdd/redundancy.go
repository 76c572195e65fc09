package cdd

import "math/big"

// RedundantGenerators identifies the generator rows (points, given without
// the leading column) that are not vertices of the convex hull of the
// others. Each candidate is tested with one exact LP: it is redundant iff
// it is a convex combination of the rows still kept. Rows are visited in
// order, so of two equal rows exactly one survives.
func RedundantGenerators(points [][]*big.Rat) []int {
	kept := make([]bool, len(points))
	for i := range kept {
		kept[i] = true
	}
	var redundant []int
	for i := range points {
		others := make([]int, 0, len(points)-1)
		for j := range points {
			if j != i && kept[j] {
				others = append(others, j)
			}
		}
		if len(others) == 0 {
			continue
		}
		if inConvexHull(points[i], points, others) {
			kept[i] = false
			redundant = append(redundant, i)
		}
	}
	return redundant
}

// inConvexHull reports whether p equals Σ λ_j·points[j] for some λ ≥ 0
// summing to one, j ranging over others.
func inConvexHull(p []*big.Rat, points [][]*big.Rat, others []int) bool {
	nv := len(others)
	m := NewMatrix(1 + nv)

	// One equality per coordinate: Σ λ_j points[j][x] = p[x].
	for x := range p {
		row := m.ZeroRow()
		row[0].Neg(p[x])
		for c, j := range others {
			row[1+c].Set(points[j][x])
		}
		m.AppendRow(row, true)
	}
	// Σ λ = 1.
	row := m.ZeroRow()
	row[0].SetInt64(-1)
	for c := range others {
		row[1+c].SetInt64(1)
	}
	m.AppendRow(row, true)
	// λ ≥ 0.
	for c := range others {
		row := m.ZeroRow()
		row[1+c].SetInt64(1)
		m.AppendRow(row, false)
	}

	return Solve(m).Status == StatusOptimal
}
