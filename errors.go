package medadmin

import (
	"errors"
	"fmt"
)

// ErrUnreachable signals a network-level failure: the request never produced
// an HTTP response. Presented to the user as a generic connectivity message.
var ErrUnreachable = errors.New("medadmin: unable to connect to server")

// ErrUnexpectedFormat signals a response body that is absent, unparseable,
// or missing the data the operation requires.
var ErrUnexpectedFormat = errors.New("medadmin: unexpected response format")

// APIError is a failure reported by the backend itself, either as a non-2xx
// HTTP response or as a soft failure (2xx HTTP status with an error-coded
// envelope). The distinction is resolved once, at the rest client boundary;
// callers only ever see this one shape.
type APIError struct {
	// Status is the envelope status code (falls back to the HTTP status
	// when the envelope carried none).
	Status int

	// Message is the human-readable message: the backend's errors[] array
	// joined into one string when present, otherwise its message field,
	// otherwise a generic fallback.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("medadmin: api error (status %d): %s", e.Status, e.Message)
}

// UserMessage extracts the text worth showing a user from any error the SDK
// returns: APIError messages verbatim, sentinel errors as their friendly
// form, anything else as a generic fallback.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrUnreachable):
		return "Unable to connect to server. Please check your connection."
	case errors.Is(err, ErrUnexpectedFormat):
		return "The server returned an unexpected response."
	default:
		return "Something went wrong. Please try again."
	}
}
