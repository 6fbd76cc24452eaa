// Package viewer runs the interactive terminal layout browser.
package viewer

// State is what the viewer is waiting on.
type State int

const (
	// StateIdle means no layout has been generated yet.
	StateIdle State = iota
	// StateCulling means rooms are placed and the deferred cull is pending.
	StateCulling
	// StateReady means the layout is complete.
	StateReady
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCulling:
		return "culling"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
