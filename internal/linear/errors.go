package linear

import "fmt"

// ErrorCategory tags a remote failure so callers can branch on a plain
// value instead of inspecting the shape of an opaque error.
type ErrorCategory string

const (
	// CategoryAuth means Linear rejected the credential.
	CategoryAuth ErrorCategory = "authentication"
	// CategoryRateLimit means Linear throttled the request. The client
	// never retries on its own — the condition is surfaced to the caller.
	CategoryRateLimit ErrorCategory = "rate_limit"
	// CategoryAPI covers every other remote-reported failure.
	CategoryAPI ErrorCategory = "api"
)

// APIError is a failure reported by the Linear API, classified into one
// of the three categories. Locally detected failures (unresolvable
// identifier, empty update payload, ...) are plain errors and never
// carry a category.
type APIError struct {
	Category ErrorCategory
	Message  string
	Status   int
}

func (e *APIError) Error() string {
	switch e.Category {
	case CategoryAuth:
		return "authentication failed: check your LINEAR_API_KEY (get a new key at https://linear.app/settings/api)"
	case CategoryRateLimit:
		return "rate limited by Linear: wait a moment and try again"
	default:
		return fmt.Sprintf("Linear API error: %s", e.Message)
	}
}

// classifyStatus maps an HTTP status code to an error category.
func classifyStatus(status int) ErrorCategory {
	switch status {
	case 401, 403:
		return CategoryAuth
	case 429:
		return CategoryRateLimit
	default:
		return CategoryAPI
	}
}

// classifyCode maps a GraphQL error extension code to an error category.
// Linear reports authentication and throttling through extensions even
// when the HTTP status is 200.
func classifyCode(code string) ErrorCategory {
	switch code {
	case "AUTHENTICATION_ERROR":
		return CategoryAuth
	case "RATELIMITED":
		return CategoryRateLimit
	default:
		return CategoryAPI
	}
}
