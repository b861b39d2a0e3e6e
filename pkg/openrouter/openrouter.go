package openrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config holds the OpenRouter connection settings for the fallback generator.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int64         `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`
}

// NewClient creates an OpenAI SDK client configured for OpenRouter. Returns
// nil when no API key is set.
func NewClient(cfg Config) *openaisdk.Client {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if trimmed := strings.TrimRight(cfg.BaseURL, "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	// OpenRouter specific attribution headers.
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.SiteName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.SiteName))
	}

	client := openaisdk.NewClient(opts...)
	return &client
}

// Generator produces free-text replies for queries no tool claims.
type Generator struct {
	client       *openaisdk.Client
	model        string
	maxTokens    int64
	temperature  float64
	systemPrompt string
}

// NewGenerator builds a Generator from cfg. systemPrompt may be empty.
func NewGenerator(cfg Config, systemPrompt string) (*Generator, error) {
	client := NewClient(cfg)
	if client == nil {
		return nil, errors.New("openrouter api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("openrouter model is required")
	}
	return &Generator{
		client:       client,
		model:        model,
		maxTokens:    cfg.MaxCompletionToken,
		temperature:  cfg.Temperature,
		systemPrompt: strings.TrimSpace(systemPrompt),
	}, nil
}

// Generate runs one chat completion for the query text.
func (g *Generator) Generate(ctx context.Context, text string) (string, error) {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, 2)
	if g.systemPrompt != "" {
		messages = append(messages, openaisdk.SystemMessage(g.systemPrompt))
	}
	messages = append(messages, openaisdk.UserMessage(text))

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(g.model),
		Messages:    messages,
		Temperature: openaisdk.Float(g.temperature),
	}
	if g.maxTokens > 0 {
		params.MaxTokens = openaisdk.Int(g.maxTokens)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openrouter: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter: empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
