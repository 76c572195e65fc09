// Package cdd implements the exact polyhedral computations the library
// builds on: rational linear programming and double-description vertex
// enumeration. It follows the matrix conventions of cddlib: a constraint
// row (b, a1, …, an) reads b + a·x ≥ 0, or b + a·x = 0 when the row is
// marked linear; a generator row (t, v1, …, vn) is a vertex when t = 1 and
// a ray when t = 0, bidirectional when marked linear.
//
// Everything is exact over big.Rat and deterministic: the simplex uses
// Bland's rule, so it terminates on every input, and enumeration processes
// rows in the order given.
package cdd
