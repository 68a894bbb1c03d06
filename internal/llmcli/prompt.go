package llmcli

import "fmt"

// promptSuffix steers tools that default to conversational output toward a
// bare JSON object. The fence/brace extraction strategies remain the safety
// net for tools that ignore it.
const promptSuffix = `

IMPORTANT: You must respond with valid JSON that matches this schema:
%s

Respond ONLY with the JSON object, no markdown code blocks, no explanation.`

// AugmentPrompt appends the schema instruction block to the caller's prompt.
// The augmentation is append-only and deterministic: the original prompt is
// never altered or truncated.
func AugmentPrompt(userPrompt string, desc *SchemaDescriptor) string {
	return userPrompt + fmt.Sprintf(promptSuffix, desc.JSON())
}
