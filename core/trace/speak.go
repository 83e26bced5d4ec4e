package trace

type SpeakType string

const (
	// SpeakTypeMessage is a text message, optionally synthesized to audio in Src.
	SpeakTypeMessage SpeakType = "message"
	// SpeakTypeAudio is a prerecorded audio file referenced by Src.
	SpeakTypeAudio SpeakType = "audio"
)

type SpeakTrace struct {
	Payload SpeakPayload `json:"payload"`
}

type SpeakPayload struct {
	Type    SpeakType `json:"type" jsonschema:"enum=message,enum=audio"`
	Message string    `json:"message"`
	Src     string    `json:"src,omitempty"`
}

func (SpeakTrace) Type() Type { return TypeSpeak }
