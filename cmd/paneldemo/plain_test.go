package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/optimist-ui/optimist/internal/panel"
)

func TestRunPlain_TracesTheScriptedLifecycle(t *testing.T) {
	var buf bytes.Buffer
	if err := runPlain(panel.DefaultConfig(), zerolog.Nop(), &buf); err != nil {
		t.Fatalf("runPlain: %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"seeded: closed",
		"REQUEST_OPEN -> opening",
		"SERVER_REQUESTS_OPEN -> opening-server-arrived",
		"PANEL_OPEN_TRANSITION_END -> open",
		"REQUEST_CLOSE -> closing-waiting-for-server",
		"REQUEST_OPEN -> closing-waiting-for-server-to-open",
		"SERVER_REQUESTS_CLOSE -> opening",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}

	// The close pass-through surfaces its effects in the trace.
	for _, eff := range []string{"setup-ghost", "hide-panel", "disarm-transition-end"} {
		if !strings.Contains(out, eff) {
			t.Errorf("output missing effect %q, got:\n%s", eff, out)
		}
	}
}

func TestRunPlain_EndsSettled(t *testing.T) {
	var buf bytes.Buffer
	if err := runPlain(panel.DefaultConfig(), zerolog.Nop(), &buf); err != nil {
		t.Fatalf("runPlain: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "-> open") {
		t.Errorf("last line = %q, want the lifecycle settled at open", last)
	}
}
