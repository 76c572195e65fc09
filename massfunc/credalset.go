package massfunc

import (
	"errors"
	"math/big"
	"sort"
	"strings"

	"github.com/lowprev/credal/gamble"
	"github.com/lowprev/credal/internal/cdd"
	"github.com/lowprev/credal/vector"
)

// ErrEmptyCredalSet is returned when an expectation is requested from a
// credal set with no members.
var ErrEmptyCredalSet = errors.New("no expectation of an empty credal set")

// CredalSet is a mutable finite set of mass functions, read as the extreme
// points of an uncertainty model. Members are immutable values; membership
// is value equality.
type CredalSet[X comparable] struct {
	members map[string]MassFunc[X]
}

// NewCredalSet returns a credal set holding the given mass functions.
func NewCredalSet[X comparable](ps ...MassFunc[X]) *CredalSet[X] {
	k := &CredalSet[X]{members: make(map[string]MassFunc[X], len(ps))}
	for _, p := range ps {
		k.Add(p)
	}
	return k
}

// Vacuous returns the vacuous credal set over the event: one point mass per
// label.
func Vacuous[X comparable](event vector.Set[X]) *CredalSet[X] {
	k := NewCredalSet[X]()
	for x := range event {
		k.Add(PointMass(x))
	}
	return k
}

func (k *CredalSet[X]) Len() int { return len(k.members) }

// Add inserts a mass function.
func (k *CredalSet[X]) Add(p MassFunc[X]) {
	k.members[p.String()] = p
}

// Discard removes a mass function if present.
func (k *CredalSet[X]) Discard(p MassFunc[X]) {
	delete(k.members, p.String())
}

func (k *CredalSet[X]) Contains(p MassFunc[X]) bool {
	_, ok := k.members[p.String()]
	return ok
}

// Members returns the mass functions in canonical order.
func (k *CredalSet[X]) Members() []MassFunc[X] {
	keys := make([]string, 0, len(k.members))
	for key := range k.members {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	ps := make([]MassFunc[X], len(keys))
	for i, key := range keys {
		ps[i] = k.members[key]
	}
	return ps
}

// PSpace returns the possibility space: the union of the members' supports.
func (k *CredalSet[X]) PSpace() vector.Set[X] {
	s := make(vector.Set[X])
	for _, p := range k.members {
		s = s.Union(p.Domain())
	}
	return s
}

// Condition returns the credal set conditional on the event. When some
// member carries no mass on the event its conditional is undefined, and the
// result falls back to the vacuous credal set over the event.
func (k *CredalSet[X]) Condition(event vector.Set[X]) *CredalSet[X] {
	out := NewCredalSet[X]()
	for _, p := range k.members {
		q, ok := p.Condition(event)
		if !ok {
			return Vacuous(event)
		}
		out.Add(q)
	}
	return out
}

// LowerExpectation returns the minimum of the members' expectations of the
// gamble. It fails with ErrEmptyCredalSet on an empty credal set.
func (k *CredalSet[X]) LowerExpectation(f gamble.Gamble[X]) (*big.Rat, error) {
	return k.expectationBound(f, -1)
}

// UpperExpectation returns the maximum of the members' expectations of the
// gamble. It fails with ErrEmptyCredalSet on an empty credal set.
func (k *CredalSet[X]) UpperExpectation(f gamble.Gamble[X]) (*big.Rat, error) {
	return k.expectationBound(f, 1)
}

func (k *CredalSet[X]) expectationBound(f gamble.Gamble[X], sign int) (*big.Rat, error) {
	if len(k.members) == 0 {
		return nil, ErrEmptyCredalSet
	}
	var bound *big.Rat
	for _, p := range k.Members() {
		e := p.Expectation(f)
		if bound == nil || e.Cmp(bound) == sign {
			bound = e
		}
	}
	return bound, nil
}

// DiscardRedundant removes the members that are not vertices of the credal
// set's convex hull.
func (k *CredalSet[X]) DiscardRedundant() {
	if len(k.members) < 2 {
		return
	}
	pspace := k.PSpace().Sorted()
	ps := k.Members()
	points := make([][]*big.Rat, len(ps))
	for i, p := range ps {
		row := make([]*big.Rat, len(pspace))
		for j, x := range pspace {
			row[j] = p.Value(x)
		}
		points[i] = row
	}
	for _, i := range cdd.RedundantGenerators(points) {
		k.Discard(ps[i])
	}
}

func (k *CredalSet[X]) Equal(o *CredalSet[X]) bool {
	if len(k.members) != len(o.members) {
		return false
	}
	for key := range k.members {
		if _, ok := o.members[key]; !ok {
			return false
		}
	}
	return true
}

func (k *CredalSet[X]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range k.Members() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
