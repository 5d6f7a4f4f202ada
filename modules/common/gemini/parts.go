package gemini

import (
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

// Parts returns the content parts of the first candidate, or nil when the
// response carries no usable candidate.
func Parts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil
	}
	return candidate.Content.Parts
}

// FirstImage - first part carrying inline binary data, in response order
func FirstImage(resp *genai.GenerateContentResponse) (*genai.Blob, bool) {
	part, ok := lo.Find(Parts(resp), func(p *genai.Part) bool {
		return p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0
	})
	if !ok {
		return nil, false
	}
	return part.InlineData, true
}

// FirstText - first non-thought part whose text is non-empty after trimming
func FirstText(resp *genai.GenerateContentResponse) (string, bool) {
	part, ok := lo.Find(Parts(resp), func(p *genai.Part) bool {
		return p != nil && !p.Thought && strings.TrimSpace(p.Text) != ""
	})
	if !ok {
		return "", false
	}
	return strings.TrimSpace(part.Text), true
}
