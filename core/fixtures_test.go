package runtimeclient

import (
	"context"

	"github.com/koscakluka/vf-runtime-client/core/interact"
	"github.com/koscakluka/vf-runtime-client/core/state"
	"github.com/koscakluka/vf-runtime-client/core/trace"
)

const versionID = "dummy-version-id"

const userResponse = "This is what the user says in response to the voice assistant"

var (
	speakTrace = trace.SpeakTrace{Payload: trace.SpeakPayload{
		Type:    trace.SpeakTypeMessage,
		Message: "Books ought to have to have good endings.",
		Src:     "data:audio/mpeg:some-large-tts-audio-file",
	}}
	speakTraceSSML = trace.SpeakTrace{Payload: trace.SpeakPayload{
		Type:    trace.SpeakTypeMessage,
		Message: "<voice>Books ought to have to have good endings.</voice>",
		Src:     "data:audio/mpeg;base64,SUQzBAAAAAAA",
	}}
	blockTrace  = trace.BlockTrace{Payload: trace.BlockPayload{BlockID: "some-block-id"}}
	flowTrace   = trace.FlowTrace{Payload: trace.FlowPayload{DiagramID: "some-diagram-id"}}
	debugTrace  = trace.DebugTrace{Payload: trace.DebugPayload{Message: "*** this is some debugging message ***"}}
	streamTrace = trace.StreamTrace{Payload: trace.StreamPayload{
		Src:    "the source-string",
		Action: trace.StreamActionLoop,
		Token:  "some token for the stream",
	}}

	choices1 = []trace.Choice{
		{Name: "Do you have small available?"},
		{Name: "I'd like to order a large please"},
		{Name: "I'd like the small  thank you very much"},
	}
	choices2 = []trace.Choice{
		{Name: "Do you have large available?"},
		{Name: "Is there any options for vegans?"},
		{Name: "Is there any options for halal?"},
	}
	choices3 = []trace.Choice{{Name: "Do you have handicapped parking?"}}
)

func initialState() state.State {
	return state.State{
		Stack: []state.Frame{
			{ProgramID: "some-program-id", Storage: map[string]any{}, Variables: map[string]any{}},
		},
		Storage:   map[string]any{},
		Variables: map[string]any{"age": 0, "name": 0, "gender": 0},
	}
}

func nextState1() state.State {
	return state.State{
		Stack: []state.Frame{{
			ProgramID: "some-program-id",
			Storage:   map[string]any{"val1": 12},
			Variables: map[string]any{"val1": 3, "val2": 17},
		}},
		Storage:   map[string]any{},
		Variables: map[string]any{"age": 17, "name": "Samwise Gamgee", "gender": "Male"},
	}
}

func nextState2() state.State {
	return state.State{
		Stack: []state.Frame{{
			ProgramID: "some-program-id",
			Storage:   map[string]any{"val1": 37},
			Variables: map[string]any{"val1": -20, "val2": 55},
		}},
		Storage:   map[string]any{},
		Variables: map[string]any{"age": 34, "name": "Frodo Baggins", "gender": "Male"},
	}
}

func startResponse() *interact.ResponseContext {
	return &interact.ResponseContext{
		State: nextState1(),
		Trace: trace.List{speakTrace, blockTrace, flowTrace, streamTrace, debugTrace, trace.ChoiceTrace{Payload: trace.ChoicePayload{Choices: choices1}}},
	}
}

func sendTextResponse() *interact.ResponseContext {
	return &interact.ResponseContext{
		State: nextState2(),
		Trace: trace.List{speakTrace, trace.EndTrace{}},
	}
}

func startResponseWithMultipleChoices() *interact.ResponseContext {
	return &interact.ResponseContext{
		State: nextState1(),
		Trace: trace.List{
			flowTrace,
			trace.ChoiceTrace{Payload: trace.ChoicePayload{Choices: choices1}},
			streamTrace,
			debugTrace,
			trace.ChoiceTrace{Payload: trace.ChoicePayload{Choices: choices2}},
			speakTrace,
			blockTrace,
			trace.ChoiceTrace{Payload: trace.ChoicePayload{Choices: choices3}},
		},
	}
}

// fakeInteractor replays responses in order and records every request body.
type fakeInteractor struct {
	initial      state.State
	initialCalls int
	initialErr   error

	responses []*interact.ResponseContext
	err       error
	requests  []interact.RequestContext
}

func (f *fakeInteractor) InitialState(context.Context) (*state.State, error) {
	f.initialCalls++
	if f.initialErr != nil {
		return nil, f.initialErr
	}
	initial := f.initial.Clone()
	return &initial, nil
}

func (f *fakeInteractor) Interact(_ context.Context, body interact.RequestContext) (*interact.ResponseContext, error) {
	f.requests = append(f.requests, body)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return &interact.ResponseContext{State: body.State}, nil
	}
	response := f.responses[0]
	f.responses = f.responses[1:]
	return response, nil
}
