package vector

import (
	"fmt"
	"sort"
)

// Set is a finite set of labels. The zero value is the empty set.
type Set[X comparable] map[X]struct{}

// NewSet returns the set of the given labels.
func NewSet[X comparable](xs ...X) Set[X] {
	s := make(Set[X], len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}
	return s
}

func (s Set[X]) Has(x X) bool {
	_, ok := s[x]
	return ok
}

// Union returns a new set holding the labels of both sets.
func (s Set[X]) Union(o Set[X]) Set[X] {
	u := make(Set[X], len(s)+len(o))
	for x := range s {
		u[x] = struct{}{}
	}
	for x := range o {
		u[x] = struct{}{}
	}
	return u
}

// Inter returns a new set holding the labels present in both sets.
func (s Set[X]) Inter(o Set[X]) Set[X] {
	u := make(Set[X])
	for x := range s {
		if o.Has(x) {
			u[x] = struct{}{}
		}
	}
	return u
}

// Diff returns a new set holding the labels of s not present in o.
func (s Set[X]) Diff(o Set[X]) Set[X] {
	u := make(Set[X])
	for x := range s {
		if !o.Has(x) {
			u[x] = struct{}{}
		}
	}
	return u
}

func (s Set[X]) Equal(o Set[X]) bool {
	if len(s) != len(o) {
		return false
	}
	for x := range s {
		if !o.Has(x) {
			return false
		}
	}
	return true
}

// Sorted returns the labels in their canonical order.
func (s Set[X]) Sorted() []X {
	xs := make([]X, 0, len(s))
	for x := range s {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool {
		return fmt.Sprint(xs[i]) < fmt.Sprint(xs[j])
	})
	return xs
}
