package llmcli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeTool drops an executable file named cmd into a fresh directory and
// points PATH at it.
func fakeTool(t *testing.T, cmds ...string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("PATH probe test relies on unix exec bits")
	}
	dir := t.TempDir()
	for _, cmd := range cmds {
		path := filepath.Join(dir, cmd)
		if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write fake tool: %v", err)
		}
	}
	t.Setenv("PATH", dir)
}

func TestIsAvailable(t *testing.T) {
	fakeTool(t, "claude", "codex")

	tests := []struct {
		identifier string
		want       bool
	}{
		{"anthropic", true},
		{"claude-3", true},
		{"openai", true},
		{"google", false}, // gemini not installed
		{"gemini-2.0-flash", false},
		{"unknown-vendor-123", true}, // resolves to the default claude profile
	}
	for _, tt := range tests {
		if got := IsAvailable(tt.identifier); got != tt.want {
			t.Errorf("IsAvailable(%q) = %v, want %v", tt.identifier, got, tt.want)
		}
	}
}

func TestIsAvailableNothingInstalled(t *testing.T) {
	fakeTool(t) // empty PATH dir

	for _, id := range KnownProviders() {
		if IsAvailable(id) {
			t.Errorf("IsAvailable(%q) = true with empty PATH", id)
		}
	}
}

func TestResolvePath(t *testing.T) {
	fakeTool(t, "gemini")

	if got := ResolvePath("google"); filepath.Base(got) != "gemini" {
		t.Errorf("ResolvePath(google) = %q, want path ending in gemini", got)
	}
	if got := ResolvePath("anthropic"); got != "" {
		t.Errorf("ResolvePath(anthropic) = %q, want empty", got)
	}
}
