package trace

type StreamAction string

const (
	StreamActionLoop  StreamAction = "LOOP"
	StreamActionPlay  StreamAction = "PLAY"
	StreamActionPause StreamAction = "PAUSE"
)

type StreamTrace struct {
	Payload StreamPayload `json:"payload"`
}

type StreamPayload struct {
	Src    string       `json:"src"`
	Action StreamAction `json:"action" jsonschema:"enum=LOOP,enum=PLAY,enum=PAUSE"`
	Token  string       `json:"token"`
}

func (StreamTrace) Type() Type { return TypeStream }
