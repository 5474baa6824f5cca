// Command paneldemo runs an interactive demo of the optimistic panel: the
// panel opens and closes instantly on local gestures while a simulated
// remote process confirms each change after a configurable latency.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/optimist-ui/optimist/internal/config"
	"github.com/optimist-ui/optimist/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for paneldemo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Demo    DemoCmd          `cmd:"" default:"withargs" help:"Run the interactive panel demo."`
}

// DemoCmd runs the demo TUI.
type DemoCmd struct {
	Latency   time.Duration `help:"Simulated remote confirmation latency." default:"600ms"`
	SlideFrom string        `help:"Drawer edge: left, right, top, bottom." default:""`
	Modal     bool          `help:"Render a centered modal instead of a drawer."`
	Config    string        `help:"Path to YAML config file." type:"path" default:".optimist.yaml"`
	NoTUI     bool          `help:"Force plain transition-trace output even if stdout is a TTY." default:"false"`
}

// userConfigPath returns the user-level config location, or "" when the
// platform has no config directory.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "optimist", "optimist.yaml")
}

// Run executes the demo command.
func (c *DemoCmd) Run() error {
	cfg, err := config.LoadLayered(userConfigPath(), c.Config)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	// Flags override file and environment.
	if c.SlideFrom != "" {
		cfg.Panel.SlideFrom = c.SlideFrom
	}
	if c.Modal {
		cfg.Panel.Modal = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	if c.NoTUI || !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		logger := logging.New(os.Stdout, "debug", cfg.Log.Format)
		return runPlain(cfg.PanelConfig(), logger, os.Stdout)
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	app, err := newApp(cfg.PanelConfig(), c.Latency, logger)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo: running program: %w", err)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
