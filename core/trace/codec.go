package trace

import (
	"encoding/json"
	"errors"
	"fmt"
)

type envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode decodes a single {type, payload} trace. Unknown discriminants are
// returned as UnknownTrace.
func Decode(data []byte) (Trace, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}

	switch env.Type {
	case TypeBlock:
		return decodePayload(env, func(p BlockPayload) Trace { return BlockTrace{Payload: p} })
	case TypeChoice:
		return decodePayload(env, func(p ChoicePayload) Trace { return ChoiceTrace{Payload: p} })
	case TypeDebug:
		return decodePayload(env, func(p DebugPayload) Trace { return DebugTrace{Payload: p} })
	case TypeEnd:
		return EndTrace{}, nil
	case TypeFlow:
		return decodePayload(env, func(p FlowPayload) Trace { return FlowTrace{Payload: p} })
	case TypeSpeak:
		return decodePayload(env, func(p SpeakPayload) Trace { return SpeakTrace{Payload: p} })
	case TypeStream:
		return decodePayload(env, func(p StreamPayload) Trace { return StreamTrace{Payload: p} })
	case TypeVisual:
		return decodePayload(env, func(p VisualPayload) Trace { return VisualTrace{Payload: p} })
	default:
		return UnknownTrace{RawType: env.Type, Payload: env.Payload}, nil
	}
}

func decodePayload[P any](env envelope, wrap func(P) Trace) (Trace, error) {
	var payload P
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode %s trace payload: %w", env.Type, err)
		}
	}
	return wrap(payload), nil
}

// Encode encodes a trace into its {type, payload} form.
func Encode(t Trace) ([]byte, error) {
	if t == nil {
		return nil, errors.New("cannot encode nil trace")
	}

	out := struct {
		Type    Type `json:"type"`
		Payload any  `json:"payload,omitempty"`
	}{Type: t.Type()}

	switch t := t.(type) {
	case BlockTrace:
		out.Payload = t.Payload
	case ChoiceTrace:
		out.Payload = t.Payload
	case DebugTrace:
		out.Payload = t.Payload
	case EndTrace:
	case FlowTrace:
		out.Payload = t.Payload
	case SpeakTrace:
		out.Payload = t.Payload
	case StreamTrace:
		out.Payload = t.Payload
	case VisualTrace:
		out.Payload = t.Payload
	case UnknownTrace:
		if len(t.Payload) > 0 {
			out.Payload = t.Payload
		}
	default:
		return nil, fmt.Errorf("cannot encode trace of type %T", t)
	}

	return json.Marshal(out)
}

// List is a trace sequence as it appears on the wire.
type List []Trace

func (l List) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(l))
	for i, t := range l {
		data, err := Encode(t)
		if err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
		raw = append(raw, data)
	}
	return json.Marshal(raw)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode trace list: %w", err)
	}

	traces := make(List, 0, len(raw))
	for i, r := range raw {
		t, err := Decode(r)
		if err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
		traces = append(traces, t)
	}
	*l = traces
	return nil
}
