package llmcli

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Extraction strategies in decreasing order of confidence. Well-behaved tools
// return pure JSON; many wrap the answer in a ```json fence; some use a bare
// fence; worst case free text surrounds a single object and only the brace
// span recovers it. Each strategy is pure and a parse miss just falls through
// to the next one.
var strategies = []func(string) (map[string]any, bool){
	parseDirect,
	parseTaggedFence,
	parseAnyFence,
	parseBraceSpan,
}

var (
	taggedFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFenceRe    = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON recovers a JSON object from arbitrary surrounding text. It
// returns the first strategy's result, or (nil, false) when nothing parses.
// It never fails on malformed input and never mutates or logs the text.
func ExtractJSON(text string) (map[string]any, bool) {
	text = strings.TrimSpace(text)
	for _, strategy := range strategies {
		if value, ok := strategy(text); ok {
			return value, true
		}
	}
	return nil, false
}

func parseDirect(text string) (map[string]any, bool) {
	return tryParse(text)
}

func parseTaggedFence(text string) (map[string]any, bool) {
	m := taggedFenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return tryParse(m[1])
}

func parseAnyFence(text string) (map[string]any, bool) {
	m := anyFenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return tryParse(m[1])
}

func parseBraceSpan(text string) (map[string]any, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	return tryParse(text[start : end+1])
}

func tryParse(candidate string) (map[string]any, bool) {
	var value map[string]any
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return nil, false
	}
	if value == nil {
		// "null" parses but is not an object.
		return nil, false
	}
	return value, true
}
