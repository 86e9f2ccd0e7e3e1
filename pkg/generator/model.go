// Package generator drives the external generative service through an
// ordered model priority list with bounded per-model retries.
package generator

import (
	"context"
	"errors"
	"strings"
)

// ErrNoModels means no generation backend could be built from the
// configured credentials.
var ErrNoModels = errors.New("no generation models configured")

// Model is one candidate generation backend in the priority list.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// SentinelFailureText is returned when every model in the priority list has
// been exhausted. It is a deliverable string, not an error: downstream
// stages treat it like any other briefing text so the failure stays visible
// end to end.
const SentinelFailureText = "Error: Failed to generate briefing with all available models."

// MissingKeyText is the stage result when no generation credential is
// configured at all.
const MissingKeyText = "Error: GEMINI_API_KEY not found in environment variables."

// IsRateLimitError reports whether an error is a quota-exhaustion signal,
// which triggers backoff on the same model instead of model fallback.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "quota")
}
