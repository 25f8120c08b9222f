package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies failures of the AI service.
type Kind int

const (
	KindUnknown Kind = iota
	KindRateLimited
	KindOverloaded
	KindQuotaExhausted
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindOverloaded:
		return "overloaded"
	case KindQuotaExhausted:
		return "quota_exhausted"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Retryable is true for transient conditions only.
func (k Kind) Retryable() bool {
	return k == KindRateLimited || k == KindOverloaded
}

// Error is a failure reported by the AI service, already classified at the
// provider boundary.
type Error struct {
	Kind    Kind
	Code    int
	Status  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("ai: ")
	b.WriteString(e.Kind.String())
	if e.Code != 0 {
		fmt.Fprintf(&b, " (%d", e.Code)
		if e.Status != "" {
			b.WriteString(" " + e.Status)
		}
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotConfigured = &Error{Kind: KindUnauthorized, Message: "API key is missing"}
	ErrNoContent     = errors.New("ai: empty response")
)

// Classify maps the structured code, status and message of a failed call to
// a Kind. A quota mention wins over the status code because Gemini reports
// both rate limits and exhausted quotas as 429.
func Classify(code int, status, message string) Kind {
	msg := strings.ToLower(message)
	status = strings.ToUpper(status)

	switch {
	case strings.Contains(msg, "quota"):
		return KindQuotaExhausted
	case code == http.StatusTooManyRequests,
		status == "RESOURCE_EXHAUSTED",
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "resource exhausted"):
		return KindRateLimited
	case code == http.StatusServiceUnavailable,
		status == "UNAVAILABLE",
		strings.Contains(msg, "overloaded"):
		return KindOverloaded
	case code == http.StatusUnauthorized,
		code == http.StatusForbidden,
		status == "UNAUTHENTICATED",
		status == "PERMISSION_DENIED",
		strings.Contains(msg, "api key"):
		return KindUnauthorized
	}
	return KindUnknown
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsRetryable is a retry.Classifier for AI calls.
func IsRetryable(err error) bool {
	return KindOf(err).Retryable()
}

// UserMessage turns err into text that can be shown to a visitor.
func UserMessage(err error) string {
	if errors.Is(err, ErrInvalidInput) {
		return "Please enter a question or prompt."
	}
	switch KindOf(err) {
	case KindRateLimited:
		return "I'm overwhelmed with questions right now. Please try again in a moment."
	case KindOverloaded:
		return "The AI ocean is overloaded right now. Please try again shortly."
	case KindQuotaExhausted:
		return "Today's AI quota has been used up. Please come back later."
	case KindUnauthorized:
		return "The AI service is not configured correctly."
	}
	return "Failed to get a response from the depths of the AI ocean."
}
