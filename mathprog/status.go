package mathprog

// StatusError reports a linear program that ended in a status where
// optimality was required. Status carries the textual solver status
// ("infeasible", "inconsistent", "unbounded", "undecided").
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return "the linear program is " + e.Status
}
