// Package credal models imprecise-probability assessments over a finite
// possibility space with exact rational arithmetic.
//
// The library is organized around a small hierarchy:
//   - vector: exact-rational finite-support functions and polytopes
//   - gamble: payoff functions, rays and cones
//   - massfunc: probability mass functions and credal sets
//   - desir: sets of desirable gambles, coherence and expectation bounds
//   - mathprog: the CONEstrip engine and polytope enumeration
//
// All computations are exact and deterministic; nothing here ever rounds.
package credal

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
