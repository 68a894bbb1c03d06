package llmcli

import "strings"

// Profile describes how one provider family's CLI tool is invoked.
// The augmented prompt is always appended as the final argument after Args.
// Profiles are fixed: new providers are added to the match table below,
// never synthesized per call.
type Profile struct {
	Command string   // executable name, resolved via PATH
	Args    []string // fixed argument prefix
	Name    string   // display name for logs and errors
}

var (
	profileClaude = Profile{Command: "claude", Args: []string{"-p"}, Name: "Claude"}
	profileGemini = Profile{Command: "gemini", Args: []string{"-y", "-p"}, Name: "Gemini"}
	profileCodex  = Profile{Command: "codex", Args: []string{"exec"}, Name: "Codex"}
)

// providerMatches is priority-ordered: the first substring hit wins.
var providerMatches = []struct {
	substrings []string
	profile    Profile
}{
	{[]string{"anthropic", "claude"}, profileClaude},
	{[]string{"google", "gemini"}, profileGemini},
	{[]string{"openai", "gpt", "codex"}, profileCodex},
}

// Resolve maps a free-form provider identifier to an invocation profile.
// Matching is case-insensitive substring; an unrecognized identifier falls
// back to the Claude profile. Resolution is total: it never fails.
func Resolve(identifier string) Profile {
	lower := strings.ToLower(identifier)
	for _, m := range providerMatches {
		for _, s := range m.substrings {
			if strings.Contains(lower, s) {
				return m.profile
			}
		}
	}
	return profileClaude
}

// KnownProviders returns the canonical identifier of each provider family in
// resolution order. Used by the doctor command for pre-flight reporting.
func KnownProviders() []string {
	return []string{"anthropic", "google", "openai"}
}
