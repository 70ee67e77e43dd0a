package workflow

import (
	"fmt"
	"io"
	"time"
)

type StepResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Report is the outcome of a run, one result per executed step.
type Report struct {
	Results []StepResult
}

func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r Report) Errors() []error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errs
}

func (r Report) Print(out io.Writer) {
	failed := r.Failed()
	_, _ = fmt.Fprintf(out, "\n%d step(s) run, %d failed\n", len(r.Results), len(failed))
	for _, res := range failed {
		_, _ = fmt.Fprintf(out, "  ✗ %s: %v\n", res.Name, res.Err)
	}
}
