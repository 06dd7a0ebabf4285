// Package sweep implements the query engine: it builds the
// (service × region × operation) job set, fans jobs out under a bounded
// worker pool, and classifies each invocation outcome into one of four
// result classes.
//
// The sweep is best-effort by design: no job's failure aborts its
// siblings, and the run's exit status never reflects per-job errors.
package sweep

import (
	"fmt"
	"time"
)

// ResultClass is the terminal classification of one job.
type ResultClass string

const (
	// ClassPending marks a job that has not finished executing.
	ClassPending ResultClass = "PENDING"

	// ClassNothing marks a successful call with an empty listing.
	ClassNothing ResultClass = "NOTHING"

	// ClassSomething marks a successful call with at least one
	// substantive item.
	ClassSomething ResultClass = "SOMETHING"

	// ClassNoAccess marks a permission or availability failure.
	ClassNoAccess ResultClass = "NO_ACCESS"

	// ClassError marks any other failure.
	ClassError ResultClass = "ERROR"
)

// Classes lists all terminal result classes in summary order.
var Classes = []ResultClass{ClassNothing, ClassSomething, ClassNoAccess, ClassError}

// Job is one (service, region, operation) unit of work. The triple is
// the job's identity; no two jobs in one run share it.
type Job struct {
	Service   string
	Region    string
	Operation string
}

// String renders the identity triple.
func (j Job) String() string {
	return fmt.Sprintf("%s %s %s", j.Service, j.Region, j.Operation)
}

// Outcome is the terminal state a worker attaches to its job, exactly
// once.
type Outcome struct {
	// Class is the assigned result class.
	Class ResultClass

	// ResultTypes lists the distinct top-level response fields that
	// carried content, for SOMETHING outcomes. A marker, not raw data:
	// it keeps saved listings small and stable.
	ResultTypes []string

	// ErrorMessage retains the error payload for NO_ACCESS and ERROR.
	ErrorMessage string

	// Elapsed is the wall time the job took, pagination included.
	Elapsed time.Duration
}

// Record is a classified job, the unit folded into the aggregator.
type Record struct {
	Job
	Outcome
}
