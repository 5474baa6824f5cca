package panel

import "fmt"

// State identifies the machine's current lifecycle position. The set is
// closed: every panel is in exactly one of these seven states at all times.
//
// Opening and OpeningServerArrived are split so that a remote confirmation
// arriving before the local enter animation finishes is recorded without
// short-circuiting the animation; the visible transition still completes on
// its own end signal. The closing side is split symmetrically: a close is
// optimistic (content ghosts out immediately) but the machine holds in a
// waiting state until the remote confirms, and a fresh open request arriving
// meanwhile is remembered rather than dropped.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpeningServerArrived
	StateOpen
	StateClosing
	StateClosingWaitingForServer
	StateClosingWaitingForServerToOpen
)

var stateNames = map[State]string{
	StateClosed:                        "closed",
	StateOpening:                       "opening",
	StateOpeningServerArrived:          "opening-server-arrived",
	StateOpen:                          "open",
	StateClosing:                       "closing",
	StateClosingWaitingForServer:       "closing-waiting-for-server",
	StateClosingWaitingForServerToOpen: "closing-waiting-for-server-to-open",
}

// String returns the diagnostic name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown-state(%d)", int(s))
}

// Initiator records which actor triggered the current closing sequence.
// It is meaningful only while in a closing-family state or immediately
// after leaving one, and is read by diagnostics, not by transition logic.
type Initiator int

const (
	InitiatorNone Initiator = iota
	InitiatorUser
	InitiatorRemote
)

// String returns the diagnostic name of the initiator.
func (i Initiator) String() string {
	switch i {
	case InitiatorUser:
		return "user"
	case InitiatorRemote:
		return "remote"
	default:
		return "none"
	}
}
