// Package delivery sends rendered digest messages over SMTP.
package delivery

import (
	"fmt"
	"sort"
	"strings"
)

// AuthError represents an SMTP authentication failure
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("smtp auth failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("smtp auth failed: %s", e.Message)
}

func (e *AuthError) Unwrap() error { return e.Cause }

// ConnectionError represents a refused or otherwise failed SMTP connection
type ConnectionError struct {
	Message string
	Cause   error
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("smtp connection failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("smtp connection failed: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// TimeoutError represents an SMTP operation that exceeded the transport deadline
type TimeoutError struct {
	Message string
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("smtp timeout: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("smtp timeout: %s", e.Message)
}

func (e *TimeoutError) Unwrap() error { return e.Cause }

// SendError represents a send failure affecting every recipient
type SendError struct {
	Message string
	Cause   error
}

func (e *SendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("smtp send failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("smtp send failed: %s", e.Message)
}

func (e *SendError) Unwrap() error { return e.Cause }

// PartialDeliveryError reports a send where some recipients were accepted and
// some rejected. The dispatcher's success contract is "all recipients
// accepted", so this is an error even though the SMTP transaction nominally
// succeeded.
type PartialDeliveryError struct {
	Accepted []string
	Failed   map[string]error
}

func (e *PartialDeliveryError) Error() string {
	failed := make([]string, 0, len(e.Failed))
	for addr := range e.Failed {
		failed = append(failed, addr)
	}
	sort.Strings(failed)
	return fmt.Sprintf("partial delivery: %d accepted, %d rejected (%s)",
		len(e.Accepted), len(e.Failed), strings.Join(failed, ", "))
}
