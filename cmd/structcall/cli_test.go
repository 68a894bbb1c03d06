package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"structcall/internal/llmcli"
)

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			name:     "tool not found suggests installing",
			err:      &llmcli.ToolNotFoundError{Command: "claude"},
			wantHint: "install it",
		},
		{
			name:     "timeout suggests widening",
			err:      &llmcli.TimeoutError{Command: "claude", Limit: time.Minute},
			wantHint: "--timeout",
		},
		{
			name:     "execution failure points at environment",
			err:      &llmcli.ExecutionError{Command: "claude", ExitCode: 1, Stderr: "not logged in"},
			wantHint: "auth",
		},
		{
			name:     "extraction failure suggests a stricter prompt",
			err:      &llmcli.ExtractionError{Preview: "I'm sorry, I can't"},
			wantHint: "stricter prompt",
		},
		{
			name:     "schema mismatch passes through",
			err:      &llmcli.SchemaError{Detail: `required field "signal" missing`},
			wantHint: "does not match schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeFailure(tt.err)
			if got == nil {
				t.Fatal("describeFailure returned nil")
			}
			if !strings.Contains(got.Error(), tt.wantHint) {
				t.Errorf("describeFailure(%v) = %q, want hint %q", tt.err, got, tt.wantHint)
			}
			// The original kind survives wrapping.
			if !errors.Is(got, tt.err) {
				t.Errorf("wrapped error lost the original: %v", got)
			}
		})
	}
}
