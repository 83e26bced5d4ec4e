package dispatch

import (
	"fmt"

	"github.com/koscakluka/vf-runtime-client/core/trace"
)

// SpeakHandler handles speak traces. It is either a SpeakFunc, which receives
// every speak trace regardless of subtype, or a SpeakHandlerMap with a
// handler per subtype.
type SpeakHandler[R any] interface {
	InvokeSpeak(payload trace.SpeakPayload) (R, error)
}

// SpeakFunc receives the message, src and subtype of every speak trace.
type SpeakFunc[R any] func(message, src string, subtype trace.SpeakType) R

func (f SpeakFunc[R]) InvokeSpeak(payload trace.SpeakPayload) (R, error) {
	return f(payload.Message, payload.Src, payload.Type), nil
}

// SpeakHandlerMap selects a handler by the speak subtype. Either handler may
// be nil, in which case a trace of that subtype fails.
type SpeakHandlerMap[R any] struct {
	HandleSpeech func(message, src string) R
	HandleAudio  func(message, src string) R
}

func (m SpeakHandlerMap[R]) InvokeSpeak(payload trace.SpeakPayload) (R, error) {
	var zero R
	switch payload.Type {
	case trace.SpeakTypeMessage:
		if m.HandleSpeech == nil {
			return zero, ErrMissingSpeechHandler
		}
		return m.HandleSpeech(payload.Message, payload.Src), nil
	case trace.SpeakTypeAudio:
		if m.HandleAudio == nil {
			return zero, ErrMissingAudioHandler
		}
		return m.HandleAudio(payload.Message, payload.Src), nil
	default:
		return zero, fmt.Errorf("%w %q", ErrUnknownSpeakSubtype, string(payload.Type))
	}
}

func invokeSpeakHandler[R any](t trace.SpeakTrace, handler SpeakHandler[R]) (R, error) {
	return handler.InvokeSpeak(t.Payload)
}

func isNilSpeakHandler[R any](handler SpeakHandler[R]) bool {
	switch h := handler.(type) {
	case nil:
		return true
	case SpeakFunc[R]:
		return h == nil
	case *SpeakHandlerMap[R]:
		return h == nil
	}
	return false
}
