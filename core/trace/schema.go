package trace

import "github.com/invopop/jsonschema"

// JSONSchema describes the wire form of a single trace: one object variant
// per known trace type.
func JSONSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}

	variants := []struct {
		traceType Type
		payload   any
	}{
		{TypeBlock, BlockPayload{}},
		{TypeChoice, ChoicePayload{}},
		{TypeDebug, DebugPayload{}},
		{TypeEnd, nil},
		{TypeFlow, FlowPayload{}},
		{TypeSpeak, SpeakPayload{}},
		{TypeStream, StreamPayload{}},
		{TypeVisual, VisualPayload{}},
	}

	root := &jsonschema.Schema{
		Version: jsonschema.Version,
		Title:   "Trace",
	}
	for _, variant := range variants {
		properties := jsonschema.NewProperties()
		properties.Set("type", &jsonschema.Schema{Const: string(variant.traceType)})
		required := []string{"type"}

		if variant.payload != nil {
			payload := reflector.Reflect(variant.payload)
			payload.Version = ""
			payload.ID = ""
			properties.Set("payload", payload)
			required = append(required, "payload")
		}

		root.OneOf = append(root.OneOf, &jsonschema.Schema{
			Title:      string(variant.traceType),
			Type:       "object",
			Properties: properties,
			Required:   required,
		})
	}

	return root
}
