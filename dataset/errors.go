package dataset

import "fmt"

/*
PreconditionError is returned when an operation is invoked with arguments that
break its contract: an empty dataset where records are required, a column
index out of range, ragged records or a feature name list that does not match
the arity of the dataset. It signals a caller bug, not a transient condition.
*/
type PreconditionError struct {
	Op     string
	Reason string
}

func (pe *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed: %s", pe.Op, pe.Reason)
}

// NewPreconditionError takes an operation name and a formatted reason and
// returns a *PreconditionError.
func NewPreconditionError(op string, format string, a ...interface{}) *PreconditionError {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, a...)}
}
