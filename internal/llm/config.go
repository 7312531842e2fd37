// Package llm provides the research model client abstraction and its Gemini implementation.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the research requester
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// RequestOptions bound a single research request.
type RequestOptions struct {
	// SearchBudget is the maximum number of web-search tool invocations the
	// model may perform. Zero disables the search tool entirely.
	SearchBudget int
	// MaxOutputTokens caps the reply length.
	MaxOutputTokens int32
	// Temperature controls sampling; near zero for factual research output.
	Temperature float32
}

// DefaultRequestOptions returns the production request bounds.
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		SearchBudget:    5,
		MaxOutputTokens: 8192,
		Temperature:     0.1,
	}
}
