package dispatcher

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
	toolx "github.com/tanpawarit/bank-front-desk/agent/tool"
)

// Fixed user-visible texts for degraded paths.
const (
	generationFailureText = "Error: Could not process your request."
	degradedResponseText  = "Sorry, something went wrong on our side. Please try again later."
)

// Sanitizer cleans raw query text before classification. The default trims
// surrounding whitespace; an HTML-stripping filter can be injected here.
type Sanitizer func(text string) string

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

func WithSanitizer(fn Sanitizer) Option {
	return func(d *Dispatcher) {
		if fn != nil {
			d.sanitize = fn
		}
	}
}

// Dispatcher owns the request-level control flow: classify the query, invoke
// the matched tool, or fall back to text generation. It keeps no state across
// calls; the only shared mutable state lives in the record store.
type Dispatcher struct {
	classifier contractx.Classifier
	registry   *toolx.Registry
	generator  contractx.TextGenerator
	sanitize   Sanitizer
}

func New(
	classifier contractx.Classifier,
	registry *toolx.Registry,
	generator contractx.TextGenerator,
	opts ...Option,
) (*Dispatcher, error) {
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if registry == nil {
		return nil, errors.New("tool registry is required")
	}
	if generator == nil {
		generator = noopGenerator{}
	}

	d := &Dispatcher{
		classifier: classifier,
		registry:   registry,
		generator:  generator,
		sanitize:   strings.TrimSpace,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// HandleQuery answers a single query. Business misses come back as StatusOK
// with an "Error: " prefixed text; only internal faults return StatusError.
func (d *Dispatcher) HandleQuery(ctx context.Context, text string) contractx.Response {
	cleaned := d.sanitize(text)

	intent, matched := d.classifier.Classify(cleaned)
	if !matched {
		return d.generate(ctx, cleaned)
	}

	t, err := d.registry.Lookup(intent.Tool)
	if err != nil {
		log.Error().Err(err).Str("tool", intent.Tool).Msg("classifier emitted unregistered tool")
		return contractx.Response{Status: contractx.StatusError, Text: degradedResponseText}
	}

	message, err := t.Execute(ctx, intent.Params)
	if err != nil {
		return d.translateToolError(intent.Tool, err)
	}

	log.Debug().Str("tool", intent.Tool).Msg("tool dispatched")
	return contractx.Response{Status: contractx.StatusOK, Text: message}
}

func (d *Dispatcher) translateToolError(toolName string, err error) contractx.Response {
	switch {
	case errors.Is(err, contractx.ErrNotFound):
		return contractx.Response{Status: contractx.StatusOK, Text: "Error: " + notFoundText(toolName)}
	case errors.Is(err, contractx.ErrInvalidArgument):
		return contractx.Response{Status: contractx.StatusOK, Text: "Error: Invalid request"}
	default:
		log.Error().Err(err).Str("tool", toolName).Msg("tool execution fault")
		return contractx.Response{Status: contractx.StatusError, Text: degradedResponseText}
	}
}

func (d *Dispatcher) generate(ctx context.Context, text string) contractx.Response {
	reply, err := d.generator.Generate(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("fallback generation failed")
		return contractx.Response{Status: contractx.StatusOK, Text: generationFailureText}
	}
	return contractx.Response{Status: contractx.StatusOK, Text: strings.TrimSpace(reply)}
}

func notFoundText(toolName string) string {
	switch toolName {
	case contractx.ToolAccountBalance:
		return "Account not found"
	case contractx.ToolLoanDetails:
		return "Loan type not found"
	default:
		return "Record not found"
	}
}

type noopGenerator struct{}

func (noopGenerator) Generate(context.Context, string) (string, error) {
	return "", contractx.ErrGenerationFailure
}
