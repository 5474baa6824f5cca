package panel

// stepResult describes the table entry applied for one (state, event) pair.
type stepResult struct {
	next      State
	initiator Initiator
	// nonOptimistic marks a Closed→Open entry driven purely by a remote
	// confirmation, with no local open gesture preceding it.
	nonOptimistic bool
}

// step is the transition table. ok is false when the event has no entry for
// the state; such events are ignored by the dispatcher (the remote side may
// emit confirmations the local machine has already superseded).
func step(s State, e Event) (stepResult, bool) {
	switch s {
	case StateClosed:
		switch e {
		case EventRequestOpen:
			return stepResult{next: StateOpening}, true
		case EventServerRequestsOpen:
			return stepResult{next: StateOpen, nonOptimistic: true}, true
		}

	case StateOpening:
		switch e {
		case EventRequestClose:
			return stepResult{next: StateClosing, initiator: InitiatorUser}, true
		case EventServerRequestsOpen:
			return stepResult{next: StateOpeningServerArrived}, true
		case EventServerRequestsClose:
			return stepResult{next: StateClosing, initiator: InitiatorRemote}, true
		case EventTransitionEnd:
			return stepResult{next: StateOpen}, true
		}

	case StateOpeningServerArrived:
		switch e {
		case EventRequestClose:
			return stepResult{next: StateClosing, initiator: InitiatorUser}, true
		case EventServerRequestsClose:
			return stepResult{next: StateClosing, initiator: InitiatorRemote}, true
		case EventTransitionEnd:
			return stepResult{next: StateOpen}, true
		}

	case StateOpen:
		switch e {
		case EventRequestClose:
			return stepResult{next: StateClosing, initiator: InitiatorUser}, true
		case EventServerRequestsClose:
			return stepResult{next: StateClosed, initiator: InitiatorRemote}, true
		}

	case StateClosing:
		// Transient pass-through; auto-advances on entry and is never
		// observed as a resting state.

	case StateClosingWaitingForServer:
		switch e {
		case EventRequestOpen:
			return stepResult{next: StateClosingWaitingForServerToOpen}, true
		case EventServerRequestsClose:
			return stepResult{next: StateClosed, initiator: InitiatorRemote}, true
		}

	case StateClosingWaitingForServerToOpen:
		switch e {
		case EventServerRequestsClose:
			// The close is confirmed but an open was requested meanwhile;
			// resume opening instead of settling at closed.
			return stepResult{next: StateOpening, initiator: InitiatorRemote}, true
		}
	}

	return stepResult{}, false
}

// autoAdvance lists transient states that immediately self-transition on
// entry. Exactly one edge exists, which keeps re-entrant transitions from
// looping.
var autoAdvance = map[State]State{
	StateClosing: StateClosingWaitingForServer,
}
