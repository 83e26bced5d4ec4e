// Package dispatch routes traces to caller supplied handlers.
//
// A Handlers value is the registry: one optional handler per known trace
// type. NewTraceProcessor captures it and returns a TraceProcessor which, for
// each trace, selects the handler by the trace's type, passes it the fields
// relevant to that type and returns the handler's result unchanged:
//
//   - block: blockID
//   - choice: choices
//   - debug: message
//   - end: no fields
//   - flow: diagramID
//   - stream: src, action, token
//   - visual: image (or the APL image URL), device, dimensions, canvasVisibility
//   - speak: see SpeakHandler
//
// Missing handlers are only detected when a trace of that type is processed.
// The processor keeps no state between calls and does not log; every failure
// is returned to the caller, who decides whether to continue with the rest of
// the sequence.
package dispatch
