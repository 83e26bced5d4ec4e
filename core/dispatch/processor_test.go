package dispatch

import (
	"errors"
	"reflect"
	"testing"

	"github.com/koscakluka/vf-runtime-client/core/trace"
)

func TestInvokeHandlers(t *testing.T) {
	handlers := echoHandlers()

	testCases := []struct {
		name     string
		invoke   func() any
		expected any
	}{
		{
			name:     "block",
			invoke:   func() any { return invokeBlockHandler(blockTrace, handlers.Block) },
			expected: blockTrace.Payload.BlockID,
		},
		{
			name:     "choice",
			invoke:   func() any { return invokeChoiceHandler(choiceTrace, handlers.Choice) },
			expected: choiceTrace.Payload.Choices,
		},
		{
			name:     "debug",
			invoke:   func() any { return invokeDebugHandler(debugTrace, handlers.Debug) },
			expected: debugTrace.Payload.Message,
		},
		{
			name:     "end",
			invoke:   func() any { return invokeEndHandler(trace.EndTrace{}, handlers.End) },
			expected: endResult,
		},
		{
			name:     "flow",
			invoke:   func() any { return invokeFlowHandler(flowTrace, handlers.Flow) },
			expected: flowTrace.Payload.DiagramID,
		},
		{
			name:   "stream",
			invoke: func() any { return invokeStreamHandler(streamTrace, handlers.Stream) },
			expected: []any{
				streamTrace.Payload.Src,
				streamTrace.Payload.Action,
				streamTrace.Payload.Token,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.invoke(); !reflect.DeepEqual(got, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestInvokeVisualHandler(t *testing.T) {
	handlers := echoHandlers()

	t.Run("image", func(t *testing.T) {
		got, err := invokeVisualHandler(visualTraceImage, handlers.Visual)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		expected := []any{
			visualTraceImage.Payload.Image,
			visualTraceImage.Payload.Device,
			visualTraceImage.Payload.Dimensions,
			visualTraceImage.Payload.CanvasVisibility,
		}
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	})

	t.Run("apl passes the image url", func(t *testing.T) {
		apl := trace.VisualTrace{Payload: trace.VisualPayload{
			VisualType: trace.VisualTypeAPL,
			ImageURL:   "https://example.com/preview.png",
			Document:   "{}",
		}}
		got, err := invokeVisualHandler(apl, handlers.Visual)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if image := got.([]any)[0]; image != "https://example.com/preview.png" {
			t.Fatalf("expected image url to be passed, got %v", image)
		}
	})

	t.Run("unknown subtype", func(t *testing.T) {
		_, err := invokeVisualHandler(fakeVisualTrace, handlers.Visual)
		if !errors.Is(err, ErrUnknownVisualSubtype) {
			t.Fatalf("expected ErrUnknownVisualSubtype, got %v", err)
		}
	})
}

func TestTraceProcessor(t *testing.T) {
	processor := NewTraceProcessor(echoHandlers())

	got, err := processor(blockTrace)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != blockTrace.Payload.BlockID {
		t.Fatalf("expected %q, got %v", blockTrace.Payload.BlockID, got)
	}
}

func TestTraceProcessorDispatchesEveryKnownType(t *testing.T) {
	// Count invocations per handler to check exactly one handler runs once.
	calls := map[trace.Type]int{}
	count := func(traceType trace.Type) { calls[traceType]++ }

	processor := NewTraceProcessor(Handlers[trace.Type]{
		Block:  func(string) trace.Type { count(trace.TypeBlock); return trace.TypeBlock },
		Choice: func([]trace.Choice) trace.Type { count(trace.TypeChoice); return trace.TypeChoice },
		Debug:  func(string) trace.Type { count(trace.TypeDebug); return trace.TypeDebug },
		End:    func() trace.Type { count(trace.TypeEnd); return trace.TypeEnd },
		Flow:   func(string) trace.Type { count(trace.TypeFlow); return trace.TypeFlow },
		Speak: SpeakFunc[trace.Type](func(string, string, trace.SpeakType) trace.Type {
			count(trace.TypeSpeak)
			return trace.TypeSpeak
		}),
		Stream: func(string, trace.StreamAction, string) trace.Type { count(trace.TypeStream); return trace.TypeStream },
		Visual: func(string, trace.DeviceType, *trace.Dimensions, trace.CanvasVisibility) trace.Type {
			count(trace.TypeVisual)
			return trace.TypeVisual
		},
	})

	traces := []trace.Trace{blockTrace, choiceTrace, debugTrace, trace.EndTrace{}, flowTrace, speakTrace, streamTrace, visualTraceImage}
	for _, tr := range traces {
		got, err := processor(tr)
		if err != nil {
			t.Fatalf("expected no error for %q, got %v", tr.Type(), err)
		}
		if got != tr.Type() {
			t.Fatalf("expected %q handler to run, got %q", tr.Type(), got)
		}
	}

	for _, traceType := range trace.Types() {
		if calls[traceType] != 1 {
			t.Fatalf("expected %q handler to be called once, got %d", traceType, calls[traceType])
		}
	}
}

func TestTraceProcessorUnknownTraceType(t *testing.T) {
	registries := map[string]Handlers[any]{
		"full":  echoHandlers(),
		"empty": {},
	}

	for name, handlers := range registries {
		t.Run(name, func(t *testing.T) {
			processor := NewTraceProcessor(handlers)

			_, err := processor(trace.UnknownTrace{RawType: "invalid"})

			var unknownErr *UnknownTraceTypeError
			if !errors.As(err, &unknownErr) {
				t.Fatalf("expected UnknownTraceTypeError, got %v", err)
			}
			if unknownErr.Type != "invalid" {
				t.Fatalf("expected offending type %q, got %q", "invalid", unknownErr.Type)
			}
			if !errors.Is(err, ErrUnknownTraceType) {
				t.Fatalf("expected error to match ErrUnknownTraceType")
			}
			expected := `invalid trace type "invalid" was passed into trace processor`
			if err.Error() != expected {
				t.Fatalf("expected message %q, got %q", expected, err.Error())
			}
		})
	}
}

func TestTraceProcessorNilTrace(t *testing.T) {
	_, err := NewTraceProcessor(echoHandlers())(nil)
	if !errors.Is(err, ErrUnknownTraceType) {
		t.Fatalf("expected ErrUnknownTraceType, got %v", err)
	}
}

func TestTraceProcessorKnownTypeOnForeignValue(t *testing.T) {
	_, err := NewTraceProcessor(echoHandlers())(trace.UnknownTrace{RawType: trace.TypeSpeak})
	if !errors.Is(err, ErrUnknownTraceType) {
		t.Fatalf("expected ErrUnknownTraceType, got %v", err)
	}
}

func TestTraceProcessorUnimplementedHandler(t *testing.T) {
	processor := NewTraceProcessor(Handlers[any]{})

	_, err := processor(speakTrace)

	var notImplemented *HandlerNotImplementedError
	if !errors.As(err, &notImplemented) {
		t.Fatalf("expected HandlerNotImplementedError, got %v", err)
	}
	if notImplemented.Type != trace.TypeSpeak {
		t.Fatalf("expected type %q, got %q", trace.TypeSpeak, notImplemented.Type)
	}
	if !errors.Is(err, ErrHandlerNotImplemented) {
		t.Fatalf("expected error to match ErrHandlerNotImplemented")
	}
	if expected := `handler for "speak" was not implemented`; err.Error() != expected {
		t.Fatalf("expected message %q, got %q", expected, err.Error())
	}
}

func TestTraceProcessorTypedNilSpeakHandlers(t *testing.T) {
	testCases := []struct {
		name    string
		handler SpeakHandler[any]
	}{
		{name: "nil func", handler: SpeakFunc[any](nil)},
		{name: "nil map pointer", handler: (*SpeakHandlerMap[any])(nil)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewTraceProcessor(Handlers[any]{Speak: testCase.handler})(speakTrace)
			if !errors.Is(err, ErrHandlerNotImplemented) {
				t.Fatalf("expected ErrHandlerNotImplemented, got %v", err)
			}
		})
	}
}

func TestTraceProcessorIsIdempotent(t *testing.T) {
	processor := NewTraceProcessor(echoHandlers())

	first, firstErr := processor(streamTrace)
	second, secondErr := processor(streamTrace)

	if firstErr != nil || secondErr != nil {
		t.Fatalf("expected no errors, got %v and %v", firstErr, secondErr)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}

	_, firstErr = processor(trace.UnknownTrace{RawType: "invalid"})
	_, secondErr = processor(trace.UnknownTrace{RawType: "invalid"})
	if firstErr.Error() != secondErr.Error() {
		t.Fatalf("expected identical errors, got %v and %v", firstErr, secondErr)
	}
}

func TestProcessAll(t *testing.T) {
	processor := NewTraceProcessor(Handlers[string]{
		Block: func(blockID string) string { return blockID },
		Flow:  func(diagramID string) string { return diagramID },
	})

	results, err := processor.ProcessAll([]trace.Trace{blockTrace, flowTrace})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(results, []string{"some-block-id", "some-diagram-id"}) {
		t.Fatalf("unexpected results: %v", results)
	}

	results, err = processor.ProcessAll([]trace.Trace{blockTrace, debugTrace, flowTrace})
	if !errors.Is(err, ErrHandlerNotImplemented) {
		t.Fatalf("expected ErrHandlerNotImplemented, got %v", err)
	}
	if len(results) != 1 || results[0] != "some-block-id" {
		t.Fatalf("expected results before the failure, got %v", results)
	}
}
