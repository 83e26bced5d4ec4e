package trace

import (
	"encoding/json"
	"slices"
)

// Type is the discriminant of a trace.
type Type string

const (
	TypeBlock  Type = "block"
	TypeChoice Type = "choice"
	TypeDebug  Type = "debug"
	TypeEnd    Type = "end"
	TypeFlow   Type = "flow"
	TypeSpeak  Type = "speak"
	TypeStream Type = "stream"
	TypeVisual Type = "visual"
)

var knownTypes = []Type{
	TypeBlock,
	TypeChoice,
	TypeDebug,
	TypeEnd,
	TypeFlow,
	TypeSpeak,
	TypeStream,
	TypeVisual,
}

// Types returns the closed set of known trace types.
func Types() []Type {
	return slices.Clone(knownTypes)
}

// IsKnown reports whether t is one of the known trace types.
func (t Type) IsKnown() bool {
	return slices.Contains(knownTypes, t)
}

func (t Type) String() string {
	return string(t)
}

type Trace interface {
	Type() Type
}

type BlockTrace struct {
	Payload BlockPayload `json:"payload"`
}

type BlockPayload struct {
	BlockID string `json:"blockID"`
}

func (BlockTrace) Type() Type { return TypeBlock }

type ChoiceTrace struct {
	Payload ChoicePayload `json:"payload"`
}

type ChoicePayload struct {
	Choices []Choice `json:"choices"`
}

// Choice is an option that can be presented to the end user.
type Choice struct {
	Name string `json:"name"`
}

func (ChoiceTrace) Type() Type { return TypeChoice }

type DebugTrace struct {
	Payload DebugPayload `json:"payload"`
}

type DebugPayload struct {
	Message string `json:"message"`
}

func (DebugTrace) Type() Type { return TypeDebug }

// EndTrace marks the end of the conversation.
type EndTrace struct{}

func (EndTrace) Type() Type { return TypeEnd }

type FlowTrace struct {
	Payload FlowPayload `json:"payload"`
}

type FlowPayload struct {
	DiagramID string `json:"diagramID"`
}

func (FlowTrace) Type() Type { return TypeFlow }

// UnknownTrace holds a trace whose discriminant is not one of the known types.
type UnknownTrace struct {
	RawType Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (t UnknownTrace) Type() Type { return t.RawType }

// HasEnd reports whether the sequence contains an END trace.
func HasEnd(traces []Trace) bool {
	return slices.ContainsFunc(traces, func(t Trace) bool {
		return t != nil && t.Type() == TypeEnd
	})
}
