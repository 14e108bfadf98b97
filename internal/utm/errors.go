package utm

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks
var (
	ErrInvalidURL     = errors.New("invalid url")
	ErrUnknownChannel = errors.New("unknown channel")
)

// InvalidURLError reports a base URL that cannot be used to build a link
type InvalidURLError struct {
	URL    string
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid url %q: %s: %v", e.URL, e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid url %q: %s", e.URL, e.Reason)
}

// Unwrap returns the parse error, if any
func (e *InvalidURLError) Unwrap() error {
	return e.Cause
}

// Is matches ErrInvalidURL
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// UnknownChannelError reports a channel name with no preset
type UnknownChannelError struct {
	Channel string
}

// Error implements the error interface
func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown channel %q", e.Channel)
}

// Is matches ErrUnknownChannel
func (e *UnknownChannelError) Is(target error) bool {
	return target == ErrUnknownChannel
}
