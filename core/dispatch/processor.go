package dispatch

import (
	"fmt"

	"github.com/koscakluka/vf-runtime-client/core/trace"
)

type VisualHandler[R any] func(image string, device trace.DeviceType, dimensions *trace.Dimensions, canvasVisibility trace.CanvasVisibility) R

// Handlers is the handler registry. A nil field means no handler is
// registered for that trace type.
type Handlers[R any] struct {
	Block  func(blockID string) R
	Choice func(choices []trace.Choice) R
	Debug  func(message string) R
	End    func() R
	Flow   func(diagramID string) R
	Speak  SpeakHandler[R]
	Stream func(src string, action trace.StreamAction, token string) R
	Visual VisualHandler[R]
}

func (h Handlers[R]) has(traceType trace.Type) bool {
	switch traceType {
	case trace.TypeBlock:
		return h.Block != nil
	case trace.TypeChoice:
		return h.Choice != nil
	case trace.TypeDebug:
		return h.Debug != nil
	case trace.TypeEnd:
		return h.End != nil
	case trace.TypeFlow:
		return h.Flow != nil
	case trace.TypeSpeak:
		return !isNilSpeakHandler(h.Speak)
	case trace.TypeStream:
		return h.Stream != nil
	case trace.TypeVisual:
		return h.Visual != nil
	}
	return false
}

// TraceProcessor invokes the registered handler for a trace and returns its
// result.
type TraceProcessor[R any] func(t trace.Trace) (R, error)

// NewTraceProcessor captures handlers. Handlers are not validated until a
// trace of the matching type is processed.
func NewTraceProcessor[R any](handlers Handlers[R]) TraceProcessor[R] {
	return func(t trace.Trace) (R, error) {
		return handlers.process(t)
	}
}

func (h Handlers[R]) process(t trace.Trace) (R, error) {
	var zero R
	if t == nil {
		return zero, &UnknownTraceTypeError{}
	}

	traceType := t.Type()
	if !traceType.IsKnown() {
		return zero, &UnknownTraceTypeError{Type: traceType}
	}
	if !h.has(traceType) {
		return zero, &HandlerNotImplementedError{Type: traceType}
	}

	switch t := t.(type) {
	case trace.BlockTrace:
		return invokeBlockHandler(t, h.Block), nil
	case trace.ChoiceTrace:
		return invokeChoiceHandler(t, h.Choice), nil
	case trace.DebugTrace:
		return invokeDebugHandler(t, h.Debug), nil
	case trace.EndTrace:
		return invokeEndHandler(t, h.End), nil
	case trace.FlowTrace:
		return invokeFlowHandler(t, h.Flow), nil
	case trace.SpeakTrace:
		return invokeSpeakHandler(t, h.Speak)
	case trace.StreamTrace:
		return invokeStreamHandler(t, h.Stream), nil
	case trace.VisualTrace:
		return invokeVisualHandler(t, h.Visual)
	default:
		// Known discriminant on a value that is not the matching variant.
		return zero, &UnknownTraceTypeError{Type: traceType}
	}
}

// ProcessAll processes traces in order and stops at the first failure,
// returning the results collected so far.
func (p TraceProcessor[R]) ProcessAll(traces []trace.Trace) ([]R, error) {
	results := make([]R, 0, len(traces))
	for i, t := range traces {
		result, err := p(t)
		if err != nil {
			return results, fmt.Errorf("trace %d: %w", i, err)
		}
		results = append(results, result)
	}
	return results, nil
}
