// Package llmcli drives externally installed, subscription-gated LLM
// command-line tools (claude, gemini, codex) as a structured-output backend:
// it steers a tool toward schema-conformant JSON, invokes it with a bounded
// timeout, and recovers a typed value from its raw text output.
package llmcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds an invocation when neither the client nor the request
// sets one.
const DefaultTimeout = 300 * time.Second

// previewLimit bounds the raw-text preview carried by ExtractionError.
const previewLimit = 500

// Client is the caller-facing surface. It holds resolved defaults only; no
// state is shared across calls, so a single Client is safe for concurrent
// use and each call owns its own child process.
type Client struct {
	provider string
	timeout  time.Duration
	logger   *zap.Logger
	run      runner
}

// Option configures a Client.
type Option func(*Client)

// WithProvider sets the default provider identifier.
func WithProvider(identifier string) Option {
	return func(c *Client) { c.provider = identifier }
}

// WithTimeout sets the default per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a zap logger. The default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Client with the anthropic provider and DefaultTimeout.
func New(opts ...Option) *Client {
	c := &Client{
		provider: "anthropic",
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
		run:      runCLI,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request is one structured invocation.
type Request struct {
	Prompt   string
	Schema   *SchemaDescriptor
	Provider string        // overrides the client default when non-empty
	Timeout  time.Duration // overrides the client default when positive
}

// AskRaw runs the full pipeline: resolve the provider, augment the prompt,
// invoke the tool, extract a JSON object and validate it against the schema.
// The call blocks for the duration of the child process, bounded by the
// timeout. Failures are one of ToolNotFoundError, TimeoutError,
// ExecutionError, ExtractionError or SchemaError.
func (c *Client) AskRaw(ctx context.Context, req Request) (map[string]any, error) {
	if req.Schema == nil {
		return nil, fmt.Errorf("request schema is required")
	}
	provider := req.Provider
	if provider == "" {
		provider = c.provider
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	profile := Resolve(provider)
	augmented := AugmentPrompt(req.Prompt, req.Schema)

	log := c.logger.With(
		zap.String("invocation_id", uuid.NewString()),
		zap.String("provider", profile.Name),
		zap.String("command", profile.Command),
	)
	log.Debug("invoking CLI tool", zap.Duration("timeout", timeout))

	start := time.Now()
	out, err := c.run(ctx, profile, augmented, timeout)
	if err != nil {
		log.Warn("CLI invocation failed",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}
	log.Debug("CLI invocation completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("stdout_bytes", len(out.Stdout)))

	value, ok := ExtractJSON(out.Stdout)
	if !ok {
		return nil, &ExtractionError{Preview: truncate(out.Stdout, previewLimit)}
	}
	if err := req.Schema.Validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

// IsAvailable reports whether the CLI tool for the given provider identifier
// exists on the host. Probing never spawns the tool itself.
func (c *Client) IsAvailable(identifier string) bool {
	return IsAvailable(identifier)
}

// Ask materializes a value of type T using the client's default provider and
// timeout. The schema is reflected from T, so the struct's json tags define
// both the instructions sent to the tool and the validation applied to its
// answer.
func Ask[T any](ctx context.Context, c *Client, prompt string) (T, error) {
	var zero T
	desc, err := SchemaFor[T]()
	if err != nil {
		return zero, err
	}
	value, err := c.AskRaw(ctx, Request{Prompt: prompt, Schema: desc})
	if err != nil {
		return zero, err
	}
	return materialize[T](value)
}

// materialize converts the validated map into T. Validation already checked
// required fields and top-level types; a residual decode error (e.g. a nested
// mismatch) still classifies as SchemaError.
func materialize[T any](value map[string]any) (T, error) {
	var result T
	data, err := json.Marshal(value)
	if err != nil {
		return result, fmt.Errorf("re-encode extracted value: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&result); err != nil {
		return result, &SchemaError{Detail: err.Error()}
	}
	return result, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
