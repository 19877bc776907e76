// Package recommend orchestrates the advisory and decision-synthesis calls
// against the generator collaborator and validates their output.
package recommend

import (
	"errors"
	"fmt"
)

// ErrNoPlans indicates there were no candidate plans to recommend from.
// Without at least one plan no fallback is feasible either.
var ErrNoPlans = errors.New("no candidate plans to recommend")

// SchemaError indicates the synthesis response was not valid against the
// required output schema: malformed JSON, missing fields, wrong types, or a
// violated cross-field invariant. The raw generator text is attached for
// diagnostics; the orchestrator never guesses a correction locally.
type SchemaError struct {
	Reason    string
	RawOutput string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("synthesis response failed schema validation: %s", e.Reason)
}

// AsSchemaError unwraps err into a SchemaError, if it carries one.
func AsSchemaError(err error) (*SchemaError, bool) {
	var schemaErr *SchemaError
	ok := errors.As(err, &schemaErr)
	return schemaErr, ok
}

// StageError wraps a failure of one of the three generator calls with the
// stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

// Stage names the orchestrator's external calls.
type Stage string

// The orchestrator's three sequential generator calls.
const (
	StageCoverageAdvisory Stage = "coverage_advisory"
	StageCostAdvisory     Stage = "cost_advisory"
	StageSynthesis        Stage = "decision_synthesis"
)

func (e *StageError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
