package dispatch

import (
	"fmt"

	"github.com/koscakluka/vf-runtime-client/core/trace"
)

func invokeBlockHandler[R any](t trace.BlockTrace, handler func(blockID string) R) R {
	return handler(t.Payload.BlockID)
}

func invokeChoiceHandler[R any](t trace.ChoiceTrace, handler func(choices []trace.Choice) R) R {
	return handler(t.Payload.Choices)
}

func invokeDebugHandler[R any](t trace.DebugTrace, handler func(message string) R) R {
	return handler(t.Payload.Message)
}

func invokeEndHandler[R any](_ trace.EndTrace, handler func() R) R {
	return handler()
}

func invokeFlowHandler[R any](t trace.FlowTrace, handler func(diagramID string) R) R {
	return handler(t.Payload.DiagramID)
}

func invokeStreamHandler[R any](t trace.StreamTrace, handler func(src string, action trace.StreamAction, token string) R) R {
	return handler(t.Payload.Src, t.Payload.Action, t.Payload.Token)
}

func invokeVisualHandler[R any](t trace.VisualTrace, handler VisualHandler[R]) (R, error) {
	p := t.Payload
	switch p.VisualType {
	case trace.VisualTypeImage:
		return handler(p.Image, p.Device, p.Dimensions, p.CanvasVisibility), nil
	case trace.VisualTypeAPL:
		return handler(p.ImageURL, p.Device, p.Dimensions, p.CanvasVisibility), nil
	default:
		var zero R
		return zero, fmt.Errorf("%w %q", ErrUnknownVisualSubtype, string(p.VisualType))
	}
}
