package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jonathan/research-digest/internal/types"
)

// Client is an abstraction over research-capable LLM providers
type Client interface {
	// Research sends a research prompt with web search enabled up to the
	// options' search budget and returns the raw reply with usage counters.
	Research(ctx context.Context, prompt string, opts RequestOptions) (*types.RawReply, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Research performs one model request. No retries are attempted here; retry
// policy, if any, belongs to the caller.
//
// When the model returns usage counters but no text content, the reply is
// returned alongside an EmptyResponseError so the caller can still log cost.
func (c *GeminiClient) Research(ctx context.Context, prompt string, opts RequestOptions) (*types.RawReply, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(opts.Temperature)
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}

	// The search budget is enforced in the prompt; the grounding tool itself
	// has no invocation cap in this SDK.
	if opts.SearchBudget > 0 {
		model.Tools = []*genai.Tool{
			{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, upstreamError(err)
	}

	reply, err := replyFromResponse(resp)
	if err != nil {
		return reply, err
	}
	return reply, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// upstreamError wraps a Gemini API error, preserving the HTTP status and the
// Retry-After hint when the provider sent one.
func upstreamError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &UpstreamRequestError{
			Message:    "model request failed",
			StatusCode: gerr.Code,
			RetryAfter: gerr.Header.Get("Retry-After"),
			Cause:      err,
		}
	}
	return &UpstreamRequestError{
		Message: "model request failed",
		Cause:   err,
	}
}

// replyFromResponse converts the SDK response into a RawReply, recording
// usage counters even when the content is unusable.
func replyFromResponse(resp *genai.GenerateContentResponse) (*types.RawReply, error) {
	reply := &types.RawReply{}
	if resp.UsageMetadata != nil {
		reply.Usage = types.TokenUsage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		return reply, &InvalidResponseError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return reply, &InvalidResponseError{Message: "no content in response"}
	}

	hasText := false
	for _, part := range candidate.Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			reply.Segments = append(reply.Segments, types.ReplySegment{
				Kind: "text",
				Text: string(p),
			})
			hasText = true
		case genai.FunctionCall:
			reply.Segments = append(reply.Segments, types.ReplySegment{
				Kind: "tool_use",
				Tool: p.Name,
			})
		}
	}

	if !hasText {
		return reply, &EmptyResponseError{Message: "no text parts in response"}
	}

	return reply, nil
}
