package runtimeclient

import (
	"slices"

	"github.com/koscakluka/vf-runtime-client/core/ssml"
	"github.com/koscakluka/vf-runtime-client/core/state"
	"github.com/koscakluka/vf-runtime-client/core/trace"
)

// AppState is the outcome of one interaction. End is set once the trace
// sequence contains an END trace.
type AppState struct {
	State state.State
	Trace []trace.Trace
	End   bool
}

func newAppState(current state.State, traces []trace.Trace) AppState {
	return AppState{
		State: current,
		Trace: slices.Clone(traces),
		End:   trace.HasEnd(traces),
	}
}

func (s AppState) Clone() AppState {
	return AppState{
		State: s.State.Clone(),
		Trace: slices.Clone(s.Trace),
		End:   s.End,
	}
}

// Context is a read-only view of the latest AppState. Accessors return
// copies.
type Context struct {
	appState   AppState
	dataConfig DataConfig
}

func newContext(appState AppState, dataConfig DataConfig) *Context {
	dataConfig.IncludeTypes = slices.Clone(dataConfig.IncludeTypes)
	return &Context{appState: appState, dataConfig: dataConfig}
}

func (c *Context) AppState() AppState { return c.appState.Clone() }

func (c *Context) State() state.State { return c.appState.State.Clone() }

// Trace returns the full trace sequence of the last interaction.
func (c *Context) Trace() []trace.Trace { return slices.Clone(c.appState.Trace) }

func (c *Context) IsEnding() bool { return c.appState.End }

// Response returns the traces selected by the DataConfig: speak and end
// traces always, other types only when listed in IncludeTypes. SSML markup
// is stripped from speak messages unless DataConfig.SSML is set.
func (c *Context) Response() []trace.Trace {
	response := make([]trace.Trace, 0, len(c.appState.Trace))
	for _, t := range c.appState.Trace {
		if t == nil || !c.includes(t.Type()) {
			continue
		}
		if speak, ok := t.(trace.SpeakTrace); ok && !c.dataConfig.SSML && speak.Payload.Type == trace.SpeakTypeMessage {
			speak.Payload.Message = ssml.Strip(speak.Payload.Message)
			t = speak
		}
		response = append(response, t)
	}
	return response
}

func (c *Context) includes(traceType trace.Type) bool {
	switch traceType {
	case trace.TypeSpeak, trace.TypeEnd:
		return true
	}
	return slices.Contains(c.dataConfig.IncludeTypes, traceType)
}

// Chips returns the choices of every choice trace, in order.
func (c *Context) Chips() []trace.Choice {
	chips := []trace.Choice{}
	for _, t := range c.appState.Trace {
		if choice, ok := t.(trace.ChoiceTrace); ok {
			chips = append(chips, choice.Payload.Choices...)
		}
	}
	return chips
}
