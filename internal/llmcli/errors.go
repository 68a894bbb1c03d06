package llmcli

import (
	"fmt"
	"time"
)

// The five failure kinds below are deliberately distinct types so callers can
// branch with errors.As. Their remediation differs: install the tool, widen
// the timeout, fix the environment, tighten the prompt, or fix the schema.
// None are conflated or silently retried inside this package.

// ToolNotFoundError indicates the resolved executable is absent from the host.
type ToolNotFoundError struct {
	Command string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("CLI tool %q not found in PATH", e.Command)
}

// TimeoutError indicates the child process did not complete within the bound.
// Limit carries the elapsed bound for diagnostics.
type TimeoutError struct {
	Command string
	Limit   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %v", e.Command, e.Limit)
}

// ExecutionError indicates the process ran and exited non-zero.
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// ExtractionError indicates the process succeeded but no parsing strategy
// recovered a JSON object. Preview carries a bounded slice of the raw output.
type ExtractionError struct {
	Preview string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract valid JSON from CLI response: %s", e.Preview)
}

// SchemaError indicates structured data was recovered but does not conform to
// the expected schema.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response does not match schema: %s", e.Detail)
}
