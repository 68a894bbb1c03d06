package llmcli

import "os/exec"

// IsAvailable reports whether the CLI tool for the given provider identifier
// is installed on the host. This is a PATH existence probe, not an
// invocation: no process is spawned and no timeout applies. Any probe error
// reads as unavailable.
func IsAvailable(identifier string) bool {
	_, err := exec.LookPath(Resolve(identifier).Command)
	return err == nil
}

// ResolvePath returns the absolute path of the provider's executable for
// diagnostic output, or "" when the tool is absent.
func ResolvePath(identifier string) string {
	path, err := exec.LookPath(Resolve(identifier).Command)
	if err != nil {
		return ""
	}
	return path
}
