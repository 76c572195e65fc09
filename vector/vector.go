package vector

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Vector is an immutable finite-support function from labels to exact
// rationals. Labels absent from the domain read as zero through Value but
// are not members of the domain. All constructors copy their input; a
// Vector is never mutated after construction.
type Vector[X comparable] struct {
	m map[X]big.Rat
}

// New builds a Vector from a mapping of labels to numeric literals; values
// are converted with FromInterface.
func New[X comparable](entries map[X]interface{}) (Vector[X], error) {
	m := make(map[X]big.Rat, len(entries))
	for x, i := range entries {
		r, err := FromInterface(i)
		if err != nil {
			return Vector[X]{}, fmt.Errorf("label %v: %w", x, err)
		}
		m[x] = *r
	}
	return Vector[X]{m: m}, nil
}

// MustNew is New, panicking on conversion failure. Intended for literals.
func MustNew[X comparable](entries map[X]interface{}) Vector[X] {
	v, err := New(entries)
	if err != nil {
		panic(err)
	}
	return v
}

// FromRats builds a Vector from exact rationals. The rationals are copied.
func FromRats[X comparable](entries map[X]*big.Rat) Vector[X] {
	m := make(map[X]big.Rat, len(entries))
	for x, r := range entries {
		m[x] = *new(big.Rat).Set(r)
	}
	return Vector[X]{m: m}
}

func (v Vector[X]) Len() int { return len(v.m) }

// Has reports whether x carries an explicit entry.
func (v Vector[X]) Has(x X) bool {
	_, ok := v.m[x]
	return ok
}

// Value returns the value at x, zero if x is outside the domain. The result
// is a fresh rational owned by the caller.
func (v Vector[X]) Value(x X) *big.Rat {
	r := new(big.Rat)
	if e, ok := v.m[x]; ok {
		r.Set(&e)
	}
	return r
}

// Domain returns the set of labels with an explicit entry.
func (v Vector[X]) Domain() Set[X] {
	s := make(Set[X], len(v.m))
	for x := range v.m {
		s[x] = struct{}{}
	}
	return s
}

// Support returns the labels with a non-zero value.
func (v Vector[X]) Support() Set[X] {
	s := make(Set[X])
	for x, e := range v.m {
		if e.Sign() != 0 {
			s[x] = struct{}{}
		}
	}
	return s
}

// Range returns the distinct values of the vector, in increasing order.
func (v Vector[X]) Range() []*big.Rat {
	seen := make(map[string]*big.Rat, len(v.m))
	for x := range v.m {
		e := v.m[x]
		r := new(big.Rat).Set(&e)
		seen[r.RatString()] = r
	}
	rs := make([]*big.Rat, 0, len(seen))
	for _, r := range seen {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Cmp(rs[j]) < 0 })
	return rs
}

// Add returns the pointwise sum over the union of both domains; entries
// missing on one side count as zero.
func (v Vector[X]) Add(o Vector[X]) Vector[X] {
	m := make(map[X]big.Rat, len(v.m)+len(o.m))
	for x := range v.m {
		r := new(big.Rat).Add(v.Value(x), o.Value(x))
		m[x] = *r
	}
	for x := range o.m {
		if _, ok := m[x]; !ok {
			m[x] = *o.Value(x)
		}
	}
	return Vector[X]{m: m}
}

// Sub returns v + (-1)·o.
func (v Vector[X]) Sub(o Vector[X]) Vector[X] {
	return v.Add(o.Neg())
}

// Scale returns the vector multiplied by the scalar c over its full domain.
func (v Vector[X]) Scale(c *big.Rat) Vector[X] {
	m := make(map[X]big.Rat, len(v.m))
	for x := range v.m {
		m[x] = *new(big.Rat).Mul(v.Value(x), c)
	}
	return Vector[X]{m: m}
}

// Div returns the vector divided by the scalar c. It panics if c is zero.
func (v Vector[X]) Div(c *big.Rat) Vector[X] {
	if c.Sign() == 0 {
		panic("vector: division by zero scalar")
	}
	return v.Scale(new(big.Rat).Inv(c))
}

func (v Vector[X]) Neg() Vector[X] {
	return v.Scale(big.NewRat(-1, 1))
}

// Equal reports label-to-value mapping equality: same domain, same values.
func (v Vector[X]) Equal(o Vector[X]) bool {
	if len(v.m) != len(o.m) {
		return false
	}
	for x := range v.m {
		if !o.Has(x) || v.Value(x).Cmp(o.Value(x)) != 0 {
			return false
		}
	}
	return true
}

// String renders the vector with labels in canonical order. Two equal
// vectors render identically, so the form doubles as a set key.
func (v Vector[X]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range v.Domain().Sorted() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %s", x, v.Value(x).RatString())
	}
	sb.WriteByte('}')
	return sb.String()
}
