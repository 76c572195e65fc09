package cdd

import (
	"math/big"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowKeys renders generator rows canonically so sets of generators compare
// independently of enumeration order.
func rowKeys(g *Generators) (vertices, rays, lin []string) {
	render := func(r []*big.Rat) string {
		parts := make([]string, len(r))
		for i, e := range r {
			parts[i] = e.RatString()
		}
		return strings.Join(parts, ",")
	}
	for i, r := range g.Rows {
		switch {
		case g.Lin.Test(uint(i)):
			lin = append(lin, render(r))
		case r[0].Sign() != 0:
			vertices = append(vertices, render(r))
		default:
			rays = append(rays, render(r))
		}
	}
	sort.Strings(vertices)
	sort.Strings(rays)
	sort.Strings(lin)
	return
}

func TestGeneratorsUnitSquare(t *testing.T) {
	// 0 <= x <= 1, 0 <= y <= 1
	m := NewMatrix(3)
	m.AppendRow(row(0, 1, 0), false)
	m.AppendRow(row(0, 0, 1), false)
	m.AppendRow(row(1, -1, 0), false)
	m.AppendRow(row(1, 0, -1), false)

	vertices, rays, lin := rowKeys(PolyhedronGenerators(m))
	assert.Empty(t, rays)
	assert.Empty(t, lin)
	assert.Equal(t, []string{"1,0,0", "1,0,1", "1,1,0", "1,1,1"}, vertices)
}

func TestGeneratorsOrthant(t *testing.T) {
	// x >= 0, y >= 0: the origin plus the two axis rays
	m := NewMatrix(3)
	m.AppendRow(row(0, 1, 0), false)
	m.AppendRow(row(0, 0, 1), false)

	vertices, rays, lin := rowKeys(PolyhedronGenerators(m))
	assert.Empty(t, lin)
	assert.Equal(t, []string{"1,0,0"}, vertices)
	assert.Equal(t, []string{"0,0,1", "0,1,0"}, rays)
}

func TestGeneratorsLineality(t *testing.T) {
	// x >= 0 alone leaves the y axis bidirectional
	m := NewMatrix(3)
	m.AppendRow(row(0, 1, 0), false)

	vertices, rays, lin := rowKeys(PolyhedronGenerators(m))
	require.Len(t, lin, 1)
	assert.Equal(t, []string{"1,0,0"}, vertices)
	assert.Equal(t, []string{"0,1,0"}, rays)

	// the lineality row is the y direction up to sign
	parts := strings.Split(lin[0], ",")
	assert.Equal(t, "0", parts[0])
	assert.Equal(t, "0", parts[1])
	assert.Contains(t, []string{"1", "-1"}, parts[2])
}

func TestGeneratorsSimplexFace(t *testing.T) {
	// x + y = 1 with x, y >= 0: the segment between the two unit points
	m := NewMatrix(3)
	m.AppendRow(row(-1, 1, 1), true)
	m.AppendRow(row(0, 1, 0), false)
	m.AppendRow(row(0, 0, 1), false)

	vertices, rays, lin := rowKeys(PolyhedronGenerators(m))
	assert.Empty(t, rays)
	assert.Empty(t, lin)
	assert.Equal(t, []string{"1,0,1", "1,1,0"}, vertices)
}

func TestGeneratorsEmptyPolyhedron(t *testing.T) {
	// x >= 1 and -x >= 1 cannot hold together
	m := NewMatrix(2)
	m.AppendRow(row(-1, 1), false)
	m.AppendRow(row(-1, -1), false)

	vertices, rays, lin := rowKeys(PolyhedronGenerators(m))
	assert.Empty(t, vertices)
	assert.Empty(t, rays)
	assert.Empty(t, lin)
}

func TestRedundantGenerators(t *testing.T) {
	points := [][]*big.Rat{
		row(0, 0),
		row(1, 0),
		row(0, 1),
		row(1, 1),
		{big.NewRat(1, 2), big.NewRat(1, 2)}, // interior of the square
		row(1, 0),                            // duplicate of index 1
	}
	// the earlier duplicate goes, the later one survives
	red := RedundantGenerators(points)
	assert.Equal(t, []int{1, 4}, red)
}

func TestRedundantGeneratorsAllExtreme(t *testing.T) {
	points := [][]*big.Rat{row(0, 0), row(1, 0), row(0, 1)}
	assert.Empty(t, RedundantGenerators(points))
}
