package contract

import "context"

// Classifier maps raw query text to an intent, or reports no match.
type Classifier interface {
	Classify(text string) (Intent, bool)
}

// Tool is a named, parameterized operation backed by a record-store call.
// Execute returns a human-readable result message; business failures come
// back as errors wrapping ErrNotFound or ErrInvalidArgument.
type Tool interface {
	Name() string
	Execute(ctx context.Context, params map[string]string) (string, error)
}

// TextGenerator is the fallback capability invoked when no tool matches.
type TextGenerator interface {
	Generate(ctx context.Context, text string) (string, error)
}
