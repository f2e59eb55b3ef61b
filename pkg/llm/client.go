package llm

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Client generates free-form or JSON-constrained completions. Both the
// planning agents and the chat service depend on this interface so the
// provider can be swapped without touching them.
type Client interface {
	// GenerateJSON asks the model for a JSON-only response and returns the
	// raw text after markdown fences are stripped. Callers decide whether
	// unparseable output is an error or a renderable raw fallback.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// NewFromEnv picks a provider from LLM_PROVIDER ("gemini" or "openai",
// defaulting to gemini).
func NewFromEnv() (Client, error) {
	switch strings.ToLower(os.Getenv("LLM_PROVIDER")) {
	case "", "gemini":
		return NewGeminiClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	case "openai":
		return NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL")), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", os.Getenv("LLM_PROVIDER"))
	}
}

var fenceRe = regexp.MustCompile("```(?:json)?\n?")

// CleanJSONResponse strips markdown code fences the models sometimes wrap
// around JSON despite being told not to.
func CleanJSONResponse(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
