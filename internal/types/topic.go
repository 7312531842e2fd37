package types

import "time"

// Topic represents an immutable weekday-scheduled research subject
type Topic struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FocusAreas  []string `json:"focus_areas"`
	SearchTerms []string `json:"search_terms"`
	Weekday     int      `json:"weekday"` // 1 (Monday) through 5 (Friday)
}

// RawReply represents the upstream model's response before extraction
type RawReply struct {
	Segments []ReplySegment `json:"segments"`
	Usage    TokenUsage     `json:"usage"`
}

// ReplySegment is a single content segment in the model reply
type ReplySegment struct {
	Kind string `json:"kind"` // "text" or "tool_use"
	Text string `json:"text,omitempty"`
	Tool string `json:"tool,omitempty"` // tool name for tool_use segments
}

// TokenUsage holds token-usage counters for cost observability
type TokenUsage struct {
	InputTokens  int32 `json:"input_tokens"`
	OutputTokens int32 `json:"output_tokens"`
}

// Text concatenates the text segments of the reply in order
func (r *RawReply) Text() string {
	var out string
	for _, seg := range r.Segments {
		if seg.Kind == "text" {
			out += seg.Text
		}
	}
	return out
}

// EmailMessage represents a fully rendered digest message, immutable after construction
type EmailMessage struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
	Date     time.Time
}
