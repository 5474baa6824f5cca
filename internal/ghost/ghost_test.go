package ghost

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestClone_StripsStylingAndNeverAliases(t *testing.T) {
	live := "\x1b[1;31mline one\x1b[0m\nline two"
	snap := Clone(live)

	if snap.Height() != 2 {
		t.Fatalf("height = %d, want 2", snap.Height())
	}
	if snap.Width() != 8 {
		t.Errorf("width = %d, want 8", snap.Width())
	}
	for _, line := range snap.lines {
		if strings.Contains(line, "\x1b") {
			t.Errorf("cloned line %q still carries styling escapes", line)
		}
	}
}

func TestSnapshot_Empty(t *testing.T) {
	cases := []struct {
		name string
		view string
		want bool
	}{
		{"blank", "", true},
		{"whitespace only", "   \n\t\n  ", true},
		{"visible", "  x  ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clone(tc.view).Empty(); got != tc.want {
				t.Errorf("Empty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFade_ProgressesToDone(t *testing.T) {
	f := NewFade(Clone("hello"), "#c0c0c0", "#303030", 100*time.Millisecond)
	if f.Done() {
		t.Fatal("fresh fade should not be done")
	}

	f.Step(40 * time.Millisecond)
	if f.Done() {
		t.Error("done before duration elapsed")
	}

	f.Step(60 * time.Millisecond)
	if !f.Done() {
		t.Error("not done after full duration")
	}

	// The text survives every frame; only its color animates.
	if !strings.Contains(f.View(), "hello") {
		t.Errorf("faded view = %q, want the cloned text", f.View())
	}
}

func TestFade_ZeroDurationIsImmediatelyDone(t *testing.T) {
	f := NewFade(Clone("hello"), "#c0c0c0", "#303030", 0)
	if !f.Done() {
		t.Error("zero-duration fade should be done from the start")
	}
}

func TestFade_BadHexFallsBack(t *testing.T) {
	f := NewFade(Clone("hello"), "not-a-color", "also-bad", 100*time.Millisecond)
	if f.View() == "" {
		t.Error("fade with fallback colors should still render")
	}
}

func TestCoordinator_SetupUsesFirstUsableSource(t *testing.T) {
	c := NewCoordinator("#c0c0c0", "#303030", 100*time.Millisecond, zerolog.Nop())

	empty := func() (string, bool) { return "", false }
	blank := func() (string, bool) { return "   ", true }
	body := func() (string, bool) { return "order summary", true }

	if !c.Setup(empty, blank, body) {
		t.Fatal("setup should succeed via the fallback chain")
	}
	view, ok := c.View()
	if !ok || !strings.Contains(view, "order summary") {
		t.Errorf("ghost view = %q, want the third source's content", view)
	}
}

func TestCoordinator_SetupFailsSoftWithNoUsableSource(t *testing.T) {
	c := NewCoordinator("#c0c0c0", "#303030", 100*time.Millisecond, zerolog.Nop())

	if c.Setup(func() (string, bool) { return "", true }) {
		t.Fatal("setup with only empty sources should report failure")
	}
	if c.Active() {
		t.Error("coordinator active after failed setup")
	}
}

func TestCoordinator_AtMostOneGhost(t *testing.T) {
	c := NewCoordinator("#c0c0c0", "#303030", 100*time.Millisecond, zerolog.Nop())
	first := func() (string, bool) { return "first ghost", true }
	second := func() (string, bool) { return "second ghost", true }

	c.Setup(first)
	c.Setup(second)

	view, ok := c.View()
	if !ok {
		t.Fatal("expected an active ghost")
	}
	if strings.Contains(view, "first ghost") {
		t.Error("stale ghost survived a new setup")
	}
	if !strings.Contains(view, "second ghost") {
		t.Errorf("ghost view = %q, want the replacement content", view)
	}
}

func TestCoordinator_StepDropsFinishedGhost(t *testing.T) {
	c := NewCoordinator("#c0c0c0", "#303030", 50*time.Millisecond, zerolog.Nop())
	c.Setup(func() (string, bool) { return "fading", true })

	if done := c.Step(20 * time.Millisecond); done {
		t.Error("ghost dropped before its duration elapsed")
	}
	if done := c.Step(40 * time.Millisecond); !done {
		t.Error("ghost not dropped after its duration elapsed")
	}
	if c.Active() {
		t.Error("coordinator still active after completed fade")
	}
}

func TestCoordinator_Drop(t *testing.T) {
	c := NewCoordinator("#c0c0c0", "#303030", 100*time.Millisecond, zerolog.Nop())
	c.Setup(func() (string, bool) { return "fading", true })
	c.Drop()
	if c.Active() {
		t.Error("coordinator active after drop")
	}
	if _, ok := c.View(); ok {
		t.Error("view available after drop")
	}
}
