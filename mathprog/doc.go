// Package mathprog hosts the combinatorial linear-programming core: the
// CONEstrip procedure (Feasible, Maximize) over collections of generator
// sets, and polytope representation conversion (VertexEnumeration).
//
// CONEstrip answers whether a reference vector can be written as a positive
// combination drawing on every generator of at least one cone of the
// collection, and which cones stay active in such a combination. Feasible
// prunes inactive cones by an iterative exact LP until a fixpoint; an empty
// result means infeasible.
package mathprog
