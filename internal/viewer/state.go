package viewer

import "fmt"

// State is the viewer's data state. It only ever moves from Loading to Ready.
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// stateMachine holds the single State of a Context. Only the renderer advances it.
type stateMachine struct {
	state State
}

// markReady moves Loading to Ready and reports whether a transition happened.
func (m *stateMachine) markReady() bool {
	if m.state == StateReady {
		return false
	}
	m.state = StateReady
	return true
}
