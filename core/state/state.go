// Package state holds the runtime session state exchanged with the
// interaction endpoint. The runtime owns its shape; the client only stores
// it and sends it back.
package state

import (
	"maps"

	"github.com/jinzhu/copier"
)

type State struct {
	Stack     []Frame        `json:"stack"`
	Storage   map[string]any `json:"storage"`
	Variables map[string]any `json:"variables"`
}

// Frame is one entry of the runtime program stack.
type Frame struct {
	ProgramID string           `json:"programID"`
	NodeID    string           `json:"nodeID,omitempty"`
	Storage   map[string]any   `json:"storage"`
	Variables map[string]any   `json:"variables"`
	Commands  []map[string]any `json:"commands,omitempty"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	var clone State
	_ = copier.CopyWithOption(&clone, &s, copier.Option{DeepCopy: true})
	return clone
}

// WithVariables returns a copy of s with variables merged over the existing
// ones.
func (s State) WithVariables(variables map[string]any) State {
	merged := s.Clone()
	if len(variables) == 0 {
		return merged
	}
	if merged.Variables == nil {
		merged.Variables = make(map[string]any, len(variables))
	}
	maps.Copy(merged.Variables, variables)
	return merged
}

// Variable returns a top-level variable.
func (s State) Variable(name string) (any, bool) {
	value, ok := s.Variables[name]
	return value, ok
}
