// Package desir models assessments of desirability: finite unions of cones
// of gambles declared strictly preferable to the status quo. A DesirSet
// answers the two classic coherence questions, avoiding sure loss and
// avoiding partial loss, and induces tight lower and upper expectation
// bounds and an equivalent credal set.
package desir
