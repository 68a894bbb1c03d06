package llmcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RawOutput is the fully captured result of one CLI invocation. It is built
// once, after the child process has exited; nothing downstream sees partial
// output.
type RawOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// runner executes a profile's CLI tool with the augmented prompt as the final
// argument. The Client holds one so tests can substitute a stub for the real
// subprocess.
type runner func(ctx context.Context, profile Profile, prompt string, timeout time.Duration) (RawOutput, error)

// waitDelay bounds how long we wait for pipe teardown after the context kills
// the child, so a misbehaving tool cannot wedge the call.
const waitDelay = 5 * time.Second

// runCLI launches the provider tool and waits for it to exit. Stdout and
// stderr are captured separately, in full. Exactly one child process is
// spawned per call, and it is terminated on every exit path: success, timeout,
// cancellation, or failure.
func runCLI(ctx context.Context, profile Profile, prompt string, timeout time.Duration) (RawOutput, error) {
	// Resolve up front so a missing tool is never reported as a failed run.
	if _, err := exec.LookPath(profile.Command); err != nil {
		return RawOutput{}, &ToolNotFoundError{Command: profile.Command}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := make([]string, 0, len(profile.Args)+1)
	args = append(args, profile.Args...)
	args = append(args, prompt)

	cmd := exec.CommandContext(ctx, profile.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return RawOutput{
			Stderr:   stderr.String(),
			TimedOut: true,
		}, &TimeoutError{Command: profile.Command, Limit: timeout}
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return RawOutput{}, fmt.Errorf("%s execution canceled: %w", profile.Command, ctx.Err())
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return RawOutput{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitCode,
		}, &ExecutionError{
			Command:  profile.Command,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
		}
	}

	return RawOutput{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}, nil
}
