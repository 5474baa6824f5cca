package panel

import (
	"fmt"
	"strings"
)

// Event is a named, parameterless signal delivered to the machine. Events
// arrive from two sources: local user gestures (open/close requests, the
// enter-animation completing) and the remote process (server confirmations).
type Event int

const (
	EventRequestOpen Event = iota
	EventRequestClose
	EventServerRequestsOpen
	EventServerRequestsClose
	EventTransitionEnd
)

var eventNames = map[Event]string{
	EventRequestOpen:         "REQUEST_OPEN",
	EventRequestClose:        "REQUEST_CLOSE",
	EventServerRequestsOpen:  "SERVER_REQUESTS_OPEN",
	EventServerRequestsClose: "SERVER_REQUESTS_CLOSE",
	EventTransitionEnd:       "PANEL_OPEN_TRANSITION_END",
}

// String returns the external wire name of the event.
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_EVENT(%d)", int(e))
}

// ParseEvent maps an external event name to an Event.
// Matching is case-insensitive; the names are the external contract.
func ParseEvent(name string) (Event, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for e, n := range eventNames {
		if n == upper {
			return e, nil
		}
	}
	return 0, fmt.Errorf("panel: unknown event %q", name)
}
