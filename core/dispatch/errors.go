package dispatch

import (
	"errors"
	"fmt"

	"github.com/koscakluka/vf-runtime-client/core/trace"
)

var (
	ErrUnknownTraceType      = errors.New("unknown trace type")
	ErrHandlerNotImplemented = errors.New("handler not implemented")
	ErrMissingSpeechHandler  = errors.New("missing handler for SpeakTrace's speak subtype")
	ErrMissingAudioHandler   = errors.New("missing handler for SpeakTrace's audio subtype")
	ErrUnknownSpeakSubtype   = errors.New("trace processor received an unknown SpeakTrace subtype")
	ErrUnknownVisualSubtype  = errors.New("trace processor received an unknown VisualTrace subtype")
)

// UnknownTraceTypeError is returned for a trace whose type is outside of the
// known set.
type UnknownTraceTypeError struct {
	Type trace.Type
}

func (e *UnknownTraceTypeError) Error() string {
	return fmt.Sprintf("invalid trace type %q was passed into trace processor", string(e.Type))
}

func (e *UnknownTraceTypeError) Unwrap() error {
	return ErrUnknownTraceType
}

// HandlerNotImplementedError is returned when the registry has no handler
// for a known trace type.
type HandlerNotImplementedError struct {
	Type trace.Type
}

func (e *HandlerNotImplementedError) Error() string {
	return fmt.Sprintf("handler for %q was not implemented", string(e.Type))
}

func (e *HandlerNotImplementedError) Unwrap() error {
	return ErrHandlerNotImplemented
}
