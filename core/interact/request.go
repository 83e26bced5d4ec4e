package interact

import (
	"github.com/koscakluka/vf-runtime-client/core/state"
	"github.com/koscakluka/vf-runtime-client/core/trace"
)

type RequestType string

const (
	RequestTypeText   RequestType = "text"
	RequestTypeIntent RequestType = "intent"
)

// Request is the user input of one interaction. A nil *Request launches the
// conversation from the current state.
type Request struct {
	Type    RequestType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

type IntentPayload struct {
	Query    string   `json:"query,omitempty"`
	Intent   Intent   `json:"intent"`
	Entities []Entity `json:"entities"`
}

type Intent struct {
	Name string `json:"name"`
}

type Entity struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewTextRequest(text string) *Request {
	return &Request{Type: RequestTypeText, Payload: text}
}

func NewIntentRequest(name string, entities ...Entity) *Request {
	if entities == nil {
		entities = []Entity{}
	}
	return &Request{
		Type: RequestTypeIntent,
		Payload: IntentPayload{
			Intent:   Intent{Name: name},
			Entities: entities,
		},
	}
}

type RequestConfig struct {
	TTS bool `json:"tts"`
}

// RequestContext is the body sent to the interaction endpoint.
type RequestContext struct {
	State   state.State   `json:"state"`
	Request *Request      `json:"request"`
	Config  RequestConfig `json:"config"`
}

// ResponseContext is the body returned by the interaction endpoint.
type ResponseContext struct {
	State   state.State `json:"state"`
	Request *Request    `json:"request"`
	Trace   trace.List  `json:"trace"`
}
