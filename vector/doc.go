// Package vector provides the exact-rational foundation of the library.
//
// A Vector is an immutable finite-support function from labels to exact
// rationals; a Polytope is a finite set of Vectors. Labels may be of any
// comparable type; all ordering and set bookkeeping uses their fmt.Sprint
// form, which must be injective over the labels used together in one
// possibility space (always true for strings and integers).
package vector
