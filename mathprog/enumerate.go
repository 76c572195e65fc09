package mathprog

import (
	"math/big"

	"github.com/lowprev/credal/internal/cdd"
	"github.com/lowprev/credal/vector"
)

// VertexEnumeration converts between the two representations of a
// polyhedron: the input polytope is read as rows of one representation
// (facets, say) and the result holds the rows of the dual one (vertices
// and rays). Bidirectional output rows are emitted under both signs.
func VertexEnumeration[X comparable](p vector.Polytope[X]) vector.Polytope[X] {
	xs := p.Domain().Sorted()
	m := cdd.NewMatrix(1 + len(xs))
	for _, v := range p.Vectors() {
		row := m.ZeroRow()
		for j, x := range xs {
			row[1+j].Set(v.Value(x))
		}
		m.AppendRow(row, false)
	}

	gens := cdd.PolyhedronGenerators(m)
	var out []vector.Vector[X]
	for i, row := range gens.Rows {
		out = append(out, rowVector(xs, row, false))
		if gens.Lin.Test(uint(i)) {
			out = append(out, rowVector(xs, row, true))
		}
	}
	return vector.NewPolytope(out...)
}

func rowVector[X comparable](xs []X, row []*big.Rat, neg bool) vector.Vector[X] {
	m := make(map[X]*big.Rat, len(xs))
	for j, x := range xs {
		e := new(big.Rat).Set(row[1+j])
		if neg {
			e.Neg(e)
		}
		m[x] = e
	}
	return vector.FromRats(m)
}
