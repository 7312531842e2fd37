package llm

import "fmt"

// UpstreamRequestError represents a failed request to the model API.
// It carries the HTTP status and an optional retry-after hint when the
// upstream provided one.
type UpstreamRequestError struct {
	Message    string
	StatusCode int
	RetryAfter string // raw Retry-After header value, empty when absent
	Cause      error
}

func (e *UpstreamRequestError) Error() string {
	msg := fmt.Sprintf("upstream request failed: %s", e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.RetryAfter != "" {
		msg = fmt.Sprintf("%s (retry after %s)", msg, e.RetryAfter)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *UpstreamRequestError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the model returned no text content.
type EmptyResponseError struct {
	Message string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty model response: %s", e.Message)
}

// InvalidResponseError indicates the model response failed basic structural
// validation (missing candidates, nil content).
type InvalidResponseError struct {
	Message string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid upstream response: %s", e.Message)
}
