//go:generate errtrace -w .

package extman

import (
	"errors"
	"fmt"

	"braces.dev/errtrace"
)

// ExtensionError reports a negotiation, reservation, or pipeline
// failure: an unknown extension named in a peer's response, an RSV
// conflict, rejected activation params, or a session's
// ProcessOutgoingMessage/ProcessIncomingMessage failing. It chains the
// originating error (when there is one) so errors.Is/errors.As still
// reach it, while Error() reproduces the original message unchanged.
type ExtensionError struct {
	msg   string
	cause error
}

// wrapExtensionError wraps an arbitrary failure (typically bubbled up
// from a session's ProcessOutgoingMessage/ProcessIncomingMessage) into
// an ExtensionError once, preserving its message verbatim and chaining
// it for errors.Is/As.
func wrapExtensionError(cause error) error {
	return errtrace.Wrap(&ExtensionError{msg: cause.Error(), cause: cause})
}

// extensionErrorf builds an ExtensionError whose message is the
// formatted text followed by ": " and sentinel's message, chaining
// sentinel so errors.Is(err, sentinel) succeeds.
func extensionErrorf(sentinel error, format string, args ...any) error {
	cause := fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
	return wrapExtensionError(cause)
}

func (e *ExtensionError) Error() string { return e.msg }
func (e *ExtensionError) Unwrap() error { return e.cause }

// RegistrationError reports a malformed or duplicate extension
// registration: a programming error, not a runtime negotiation
// failure, distinguished from ExtensionError/header.ParseError by the
// unexported programmingError marker.
type RegistrationError struct {
	msg string
}

func newRegistrationError(format string, args ...any) error {
	return &RegistrationError{msg: fmt.Sprintf(format, args...)}
}

func (e *RegistrationError) Error() string  { return e.msg }
func (*RegistrationError) programmingError() {}

// Sentinels for errors.Is checks against the wrapped ExtensionError.
var (
	ErrUnknownExtension = errors.New("unknown extension")
	ErrRSVConflict      = errors.New("rsv bit already claimed by another extension")
	ErrRejectedParams   = errors.New("unacceptable parameters")
)
