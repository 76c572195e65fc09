package vector

import (
	"sort"
	"strings"
)

// Polytope is an immutable finite set of Vectors, usually read as the
// generators of a polytope or cone. Membership is value equality.
type Polytope[X comparable] struct {
	vs map[string]Vector[X]
}

// NewPolytope returns the polytope generated by the given vectors.
// Duplicates collapse.
func NewPolytope[X comparable](vs ...Vector[X]) Polytope[X] {
	p := Polytope[X]{vs: make(map[string]Vector[X], len(vs))}
	for _, v := range vs {
		p.vs[v.String()] = v
	}
	return p
}

func (p Polytope[X]) Len() int { return len(p.vs) }

// Contains reports membership by value equality.
func (p Polytope[X]) Contains(v Vector[X]) bool {
	_, ok := p.vs[v.String()]
	return ok
}

// Vectors returns the member vectors in canonical order.
func (p Polytope[X]) Vectors() []Vector[X] {
	keys := make([]string, 0, len(p.vs))
	for k := range p.vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vs := make([]Vector[X], len(keys))
	for i, k := range keys {
		vs[i] = p.vs[k]
	}
	return vs
}

// Domain returns the union of the member domains.
func (p Polytope[X]) Domain() Set[X] {
	s := make(Set[X])
	for _, v := range p.vs {
		for x := range v.m {
			s[x] = struct{}{}
		}
	}
	return s
}

// Union returns the set union of both polytopes' generators.
func (p Polytope[X]) Union(o Polytope[X]) Polytope[X] {
	u := Polytope[X]{vs: make(map[string]Vector[X], len(p.vs)+len(o.vs))}
	for k, v := range p.vs {
		u.vs[k] = v
	}
	for k, v := range o.vs {
		u.vs[k] = v
	}
	return u
}

func (p Polytope[X]) Equal(o Polytope[X]) bool {
	if len(p.vs) != len(o.vs) {
		return false
	}
	for k := range p.vs {
		if _, ok := o.vs[k]; !ok {
			return false
		}
	}
	return true
}

func (p Polytope[X]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p.Vectors() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
