package workflow

import (
	"fmt"
)

// PreconditionError is returned by a step whose required session value
// has not been produced by an earlier step. No remote call is made.
type PreconditionError struct {
	Step    string
	Missing string
	Hint    string
}

var _ error = &PreconditionError{}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: no %s available", e.Step, e.Missing)
}
