// Package extract turns free text into action item strings with a language
// model.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Extractor returns the action items found in text, in the order the model
// listed them. An empty result is not an error.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
	Name() string
}

// ErrMalformedResponse is returned when the model output is not the expected JSON object
var ErrMalformedResponse = errors.New("malformed model response")

const promptTemplate = `Extract every action item / to-do from the text below.
Return a JSON object of the form {"items": ["first action item", "second action item"]}.
If there are no action items, return {"items": []}.

Text:
%s
`

func buildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// ParseItems decodes a model reply of the form {"items": [...]}. Markdown code
// fences and chatter around the JSON object are tolerated.
func ParseItems(raw string) ([]string, error) {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```") {
		parts := strings.SplitN(clean, "\n", 2)
		if len(parts) > 1 {
			clean = parts[1]
		}
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
		clean = strings.TrimSpace(clean)
	}
	if start := strings.Index(clean, "{"); start >= 0 {
		if end := strings.LastIndex(clean, "}"); end > start {
			clean = clean[start : end+1]
		}
	}

	var parsed struct {
		Items *[]string `json:"items"`
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if parsed.Items == nil {
		return nil, fmt.Errorf("%w: missing \"items\" key", ErrMalformedResponse)
	}

	return *parsed.Items, nil
}

// MaxItemLen is the longest action item kept, in runes
const MaxItemLen = 500

// Normalize prepares raw model output for storage: items are trimmed, blank
// ones dropped, the rest cut to MaxItemLen runes, then deduplicated.
func Normalize(raw []string) []string {
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if r := []rune(item); len(r) > MaxItemLen {
			item = strings.TrimSpace(string(r[:MaxItemLen]))
		}
		items = append(items, item)
	}
	return Deduplicate(items)
}

// Deduplicate keeps the first occurrence of each string, comparing
// case-insensitively. Survivors keep their original casing and order.
func Deduplicate(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
