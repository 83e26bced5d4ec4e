// Package trace defines the typed trace contract returned by the runtime
// interaction endpoint.
//
// A trace is one discrete event of an interaction turn. Each trace carries a
// discriminant (see Type) and a payload whose shape depends on it:
//
//   - BlockTrace (block): the runtime entered a block.
//   - ChoiceTrace (choice): options that can be presented to the user.
//   - DebugTrace (debug): diagnostic message from the runtime.
//   - EndTrace (end): the conversation ended. Carries no payload.
//   - FlowTrace (flow): the runtime entered a flow (diagram).
//   - SpeakTrace (speak): speech to play; subtype message (TTS) or audio.
//   - StreamTrace (stream): audio stream control.
//   - VisualTrace (visual): image or APL visual to display.
//
// Traces with a discriminant outside of this set decode to UnknownTrace so
// that the contract violation is reported by whoever consumes the trace.
package trace
