// Package overlay renders an optimistic panel (centered modal or slide-over
// drawer) as a Bubble Tea component wrapped around the lifecycle machine.
// The component reacts instantly to local gestures; the authoritative
// confirmation arrives later as a server snapshot.
package overlay

// OpenRequestMsg asks the panel to open optimistically.
type OpenRequestMsg struct{}

// CloseRequestMsg asks the panel to close optimistically.
type CloseRequestMsg struct{}

// ServerSnapshotMsg carries the remote process's view of the panel: whether
// it wants the panel open, and the confirmed content to display. The
// overlay samples Active once per snapshot to derive implied server events,
// so any transport that can produce these snapshots can drive the panel.
type ServerSnapshotMsg struct {
	Active  bool
	Content string
}

// FocusRequestMsg asks the embedding application to move focus to Target
// after a panel opens.
type FocusRequestMsg struct {
	Target string
}

// Timer tags routing anim frames to their consumers.
const (
	tagOpen  = "panel-open"
	tagGhost = "panel-ghost"
	tagFlip  = "panel-flip"
)
