// Package gamble models bounded exact-rational payoff functions over a
// finite possibility space, together with the directions (rays) and conic
// generator sets (cones) built from them.
//
// A Gamble extends the vector algebra with pointwise multiplication, scalar
// addition, restriction and cylindrical extension; unlike plain real-valued
// function algebra, all pointwise operations combine domains by union,
// reading absent coordinates as zero.
package gamble
