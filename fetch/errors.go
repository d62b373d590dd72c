package fetch

import (
	"errors"
	"strings"
)

// DefaultFallback is used when a store is built without its own fallback message
const DefaultFallback = "Unknown error"

// PublicError is implemented by provider errors that carry a message safe to
// show to the user. The message must never contain credentials.
type PublicError interface {
	error
	PublicMessage() string
}

// Message reduces a load failure to a single human-readable string.
// The first non-empty public message in the chain wins; anything else
// collapses to fallback.
func Message(err error, fallback string) string {
	if fallback == "" {
		fallback = DefaultFallback
	}
	if err == nil {
		return fallback
	}

	var pub PublicError
	if errors.As(err, &pub) {
		if msg := strings.TrimSpace(pub.PublicMessage()); msg != "" {
			return msg
		}
	}

	return fallback
}
