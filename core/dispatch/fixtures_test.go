package dispatch

import "github.com/koscakluka/vf-runtime-client/core/trace"

const endResult = "conversation ended"

var (
	speakTrace = trace.SpeakTrace{Payload: trace.SpeakPayload{
		Type:    trace.SpeakTypeMessage,
		Message: "Books ought to have to have good endings.",
		Src:     "data:audio/mpeg:some-large-tts-audio-file",
	}}
	speakTraceAudio = trace.SpeakTrace{Payload: trace.SpeakPayload{
		Type:    trace.SpeakTypeAudio,
		Message: `<audio src="http://localhost:8000/audio.local/1612307079557-mixaund-tech-corporate.mp3"/>`,
		Src:     "http://localhost:8000/audio.local/1612307079557-mixaund-tech-corporate.mp3",
	}}
	fakeSpeakTrace = trace.SpeakTrace{Payload: trace.SpeakPayload{
		Type:    "fake",
		Message: "fake",
	}}
	blockTrace  = trace.BlockTrace{Payload: trace.BlockPayload{BlockID: "some-block-id"}}
	choiceTrace = trace.ChoiceTrace{Payload: trace.ChoicePayload{Choices: []trace.Choice{
		{Name: "Do you have small available?"},
		{Name: "I'd like to order a large please"},
		{Name: "I'd like the small  thank you very much"},
	}}}
	debugTrace  = trace.DebugTrace{Payload: trace.DebugPayload{Message: "*** this is some debugging message ***"}}
	flowTrace   = trace.FlowTrace{Payload: trace.FlowPayload{DiagramID: "some-diagram-id"}}
	streamTrace = trace.StreamTrace{Payload: trace.StreamPayload{
		Src:    "the source-string",
		Action: trace.StreamActionLoop,
		Token:  "some token for the stream",
	}}
	visualTraceImage = trace.VisualTrace{Payload: trace.VisualPayload{
		VisualType:       trace.VisualTypeImage,
		Image:            "image.png",
		Device:           trace.DeviceMobile,
		Dimensions:       &trace.Dimensions{Width: 100, Height: 200},
		CanvasVisibility: trace.CanvasVisibilityCropped,
	}}
	fakeVisualTrace = trace.VisualTrace{Payload: trace.VisualPayload{VisualType: "fake"}}
)

// Every handler echoes back what it received so tests can assert on the
// exact fields passed through.
func echoHandlers() Handlers[any] {
	return Handlers[any]{
		Block:  func(blockID string) any { return blockID },
		Choice: func(choices []trace.Choice) any { return choices },
		Debug:  func(message string) any { return message },
		End:    func() any { return endResult },
		Flow:   func(diagramID string) any { return diagramID },
		Speak:  echoSpeakHandlerMap(),
		Stream: func(src string, action trace.StreamAction, token string) any {
			return []any{src, action, token}
		},
		Visual: func(image string, device trace.DeviceType, dimensions *trace.Dimensions, canvasVisibility trace.CanvasVisibility) any {
			return []any{image, device, dimensions, canvasVisibility}
		},
	}
}

func echoSpeakFunc() SpeakFunc[any] {
	return func(message, src string, subtype trace.SpeakType) any {
		return []any{message, src, subtype}
	}
}

func echoSpeakHandlerMap() SpeakHandlerMap[any] {
	return SpeakHandlerMap[any]{
		HandleSpeech: func(message, src string) any { return []any{"speech", message, src} },
		HandleAudio:  func(message, src string) any { return []any{"audio", message, src} },
	}
}
