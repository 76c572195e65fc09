package desir

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/lowprev/credal/gamble"
	"github.com/lowprev/credal/internal/cdd"
	"github.com/lowprev/credal/massfunc"
	"github.com/lowprev/credal/vector"
)

// DesirSet is a mutable finite set of cones of desirable gambles. The model
// is the union of the cones, not its convex hull: a multi-ray cone asserts
// joint desirability of all positive combinations drawing on every one of
// its generators, which is how non-closed assessments are expressed.
// Members are immutable values; membership is value equality.
type DesirSet[X comparable] struct {
	cones map[string]gamble.Cone[X]
}

// New returns a desirability set holding the given cones.
func New[X comparable](cs ...gamble.Cone[X]) *DesirSet[X] {
	d := &DesirSet[X]{cones: make(map[string]gamble.Cone[X], len(cs))}
	for _, c := range cs {
		d.Add(c)
	}
	return d
}

// Vacuous returns the vacuous assessment over the event: one singleton cone
// per label, holding its indicator ray.
func Vacuous[X comparable](event vector.Set[X]) *DesirSet[X] {
	d := New[X]()
	for x := range event {
		d.Add(gamble.MustCone(gamble.Indicator(vector.NewSet(x))))
	}
	return d
}

func (d *DesirSet[X]) Len() int { return len(d.cones) }

// Add inserts a cone.
func (d *DesirSet[X]) Add(c gamble.Cone[X]) {
	d.cones[c.String()] = c
}

// AddGambles inserts the cone generated by the given gambles. It fails
// with gamble.ErrZeroRay if any of them is identically zero.
func (d *DesirSet[X]) AddGambles(gs ...gamble.Gamble[X]) error {
	c, err := gamble.NewCone(gs...)
	if err != nil {
		return err
	}
	d.Add(c)
	return nil
}

// Discard removes a cone if present.
func (d *DesirSet[X]) Discard(c gamble.Cone[X]) {
	delete(d.cones, c.String())
}

func (d *DesirSet[X]) Contains(c gamble.Cone[X]) bool {
	_, ok := d.cones[c.String()]
	return ok
}

// Cones returns the member cones in canonical order.
func (d *DesirSet[X]) Cones() []gamble.Cone[X] {
	keys := make([]string, 0, len(d.cones))
	for k := range d.cones {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cs := make([]gamble.Cone[X], len(keys))
	for i, k := range keys {
		cs[i] = d.cones[k]
	}
	return cs
}

// PSpace returns the possibility space: the union of the cones' domains.
func (d *DesirSet[X]) PSpace() vector.Set[X] {
	s := make(vector.Set[X])
	for _, c := range d.cones {
		s = s.Union(c.Domain())
	}
	return s
}

// rays returns every generator of every cone, in canonical cone order.
func (d *DesirSet[X]) rays() []gamble.Ray[X] {
	var rs []gamble.Ray[X]
	for _, c := range d.Cones() {
		rs = append(rs, c.Rays()...)
	}
	return rs
}

// SetLowerPr constrains the lower prevision (expectation bound) of the
// gamble to val: the derived two-ray cone holds f − val together with the
// indicator of f's domain, which acts as the conditioning event.
func (d *DesirSet[X]) SetLowerPr(f gamble.Gamble[X], val interface{}) error {
	v, err := vector.FromInterface(val)
	if err != nil {
		return err
	}
	c, err := gamble.NewCone(f.SubScalar(v), gamble.Indicator(f.Domain()))
	if err != nil {
		return fmt.Errorf("prevision assessment on %v: %w", f, err)
	}
	d.Add(c)
	return nil
}

// SetUpperPr constrains the upper prevision of the gamble to val.
func (d *DesirSet[X]) SetUpperPr(f gamble.Gamble[X], val interface{}) error {
	v, err := vector.FromInterface(val)
	if err != nil {
		return err
	}
	return d.SetLowerPr(f.Neg(), new(big.Rat).Neg(v))
}

// SetPr constrains both the lower and the upper prevision of the gamble to
// val.
func (d *DesirSet[X]) SetPr(f gamble.Gamble[X], val interface{}) error {
	if err := d.SetLowerPr(f, val); err != nil {
		return err
	}
	return d.SetUpperPr(f, val)
}

func (d *DesirSet[X]) Equal(o *DesirSet[X]) bool {
	if len(d.cones) != len(o.cones) {
		return false
	}
	for k := range d.cones {
		if _, ok := o.cones[k]; !ok {
			return false
		}
	}
	return true
}

func (d *DesirSet[X]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range d.Cones() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Credal returns the closed credal set equivalent to the assessment: the
// generators of all cones become the inequality representation of the
// model's polyhedron, whose extreme points map to mass functions.
// Identically-zero generator rows (the origin of the homogenized cone) are
// skipped; any other extreme ray that is no mass function makes the
// conversion fail.
func (d *DesirSet[X]) Credal() (*massfunc.CredalSet[X], error) {
	k := massfunc.NewCredalSet[X]()
	if len(d.cones) == 0 {
		return k, nil
	}
	union := gamble.ConeOfRays[X]()
	for _, c := range d.cones {
		union = union.Union(c)
	}
	xs := union.Domain().Sorted()

	m := cdd.NewMatrix(1 + len(xs))
	for _, r := range union.Rays() {
		row := m.ZeroRow()
		for j, x := range xs {
			row[1+j].Set(r.Value(x))
		}
		m.AppendRow(row, false)
	}

	gens := cdd.PolyhedronGenerators(m)
	for i, row := range gens.Rows {
		signs := []bool{false}
		if gens.Lin.Test(uint(i)) {
			signs = append(signs, true)
		}
		for _, neg := range signs {
			entries := make(map[X]*big.Rat, len(xs))
			zero := true
			for j, x := range xs {
				e := new(big.Rat).Set(row[1+j])
				if neg {
					e.Neg(e)
				}
				if e.Sign() != 0 {
					zero = false
				}
				entries[x] = e
			}
			if zero {
				continue
			}
			p, err := massfunc.FromVector(vector.FromRats(entries))
			if err != nil {
				return nil, fmt.Errorf("extreme ray %d of the credal polyhedron: %w", i, err)
			}
			k.Add(p)
		}
	}
	return k, nil
}
