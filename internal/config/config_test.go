package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "optimist.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Panel.Animation != 300*time.Millisecond {
		t.Errorf("default animation = %v, want %v", cfg.Panel.Animation, 300*time.Millisecond)
	}
	if cfg.Panel.SlideFrom != "right" {
		t.Errorf("default slide_from = %q, want %q", cfg.Panel.SlideFrom, "right")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	cfgPath := writeConfig(t, `
panel:
  animation: 150ms
  slide_from: left
log:
  level: debug
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Panel.Animation != 150*time.Millisecond {
		t.Errorf("animation = %v, want %v", cfg.Panel.Animation, 150*time.Millisecond)
	}
	if cfg.Panel.SlideFrom != "left" {
		t.Errorf("slide_from = %q, want %q", cfg.Panel.SlideFrom, "left")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/optimist.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfgPath := writeConfig(t, "{{invalid yaml")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	cfgPath := writeConfig(t, `
panel:
  slide_from: bottom
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Panel.SlideFrom != "bottom" {
		t.Errorf("slide_from = %q, want %q", cfg.Panel.SlideFrom, "bottom")
	}
	// Unset fields should retain defaults.
	if cfg.Panel.Animation != 300*time.Millisecond {
		t.Errorf("animation = %v, want default %v", cfg.Panel.Animation, 300*time.Millisecond)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("log format = %q, want default %q", cfg.Log.Format, "console")
	}
}

func TestLoad_LayeredPriority(t *testing.T) {
	// Setup: user config sets the edge, project config overrides timing.
	userCfg := writeConfig(t, `
panel:
  animation: 500ms
  slide_from: left
`)
	projectCfg := writeConfig(t, `
panel:
  animation: 120ms
`)

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Edge from user config (project doesn't set it).
	if cfg.Panel.SlideFrom != "left" {
		t.Errorf("slide_from = %q, want %q", cfg.Panel.SlideFrom, "left")
	}
	// Timing from project config (overrides user).
	if cfg.Panel.Animation != 120*time.Millisecond {
		t.Errorf("animation = %v, want %v", cfg.Panel.Animation, 120*time.Millisecond)
	}
	// Log settings retain defaults when neither layer sets them.
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want default %q", cfg.Log.Level, "info")
	}
}

func TestLoadLayered_AllMissing(t *testing.T) {
	cfg, err := LoadLayered("/no/user.yaml", "/no/project.yaml")
	if err != nil {
		t.Fatalf("LoadLayered(all missing) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "OPTIMIST_ANIMATION overrides duration",
			envs: map[string]string{"OPTIMIST_ANIMATION": "75ms"},
			check: func(t *testing.T, c Config) {
				if c.Panel.Animation != 75*time.Millisecond {
					t.Errorf("animation = %v, want %v", c.Panel.Animation, 75*time.Millisecond)
				}
			},
		},
		{
			name: "OPTIMIST_ESCAPE_CLOSES overrides flag",
			envs: map[string]string{"OPTIMIST_ESCAPE_CLOSES": "false"},
			check: func(t *testing.T, c Config) {
				if c.Panel.EscapeCloses {
					t.Error("escape_closes = true, want false")
				}
			},
		},
		{
			name: "OPTIMIST_SLIDE_FROM overrides edge",
			envs: map[string]string{"OPTIMIST_SLIDE_FROM": "top"},
			check: func(t *testing.T, c Config) {
				if c.Panel.SlideFrom != "top" {
					t.Errorf("slide_from = %q, want %q", c.Panel.SlideFrom, "top")
				}
			},
		},
		{
			name: "OPTIMIST_LOG_LEVEL overrides level",
			envs: map[string]string{"OPTIMIST_LOG_LEVEL": "trace"},
			check: func(t *testing.T, c Config) {
				if c.Log.Level != "trace" {
					t.Errorf("log level = %q, want %q", c.Log.Level, "trace")
				}
			},
		},
		{
			name:    "invalid OPTIMIST_ANIMATION returns error",
			envs:    map[string]string{"OPTIMIST_ANIMATION": "notaduration"},
			wantErr: true,
		},
		{
			name:    "invalid OPTIMIST_MODAL returns error",
			envs:    map[string]string{"OPTIMIST_MODAL": "yep"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	cfgPath := writeConfig(t, `
panel:
  animaton: 150ms
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("Load() should return error for unknown field 'animaton'")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "zero animation",
			modify:  func(c *Config) { c.Panel.Animation = 0 },
			wantErr: true,
		},
		{
			name:    "negative animation",
			modify:  func(c *Config) { c.Panel.Animation = -time.Second },
			wantErr: true,
		},
		{
			name:    "unknown slide direction",
			modify:  func(c *Config) { c.Panel.SlideFrom = "sideways" },
			wantErr: true,
		},
		{
			name:   "modal ignores slide direction",
			modify: func(c *Config) { c.Panel.Modal = true; c.Panel.SlideFrom = "" },
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	cfgPath := writeConfig(t, "# just a comment\n")
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(comment-only) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(comment-only) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfgPath := writeConfig(t, "")
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestPanelConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Panel.Animation = 200 * time.Millisecond
	cfg.Panel.SlideFrom = "bottom"

	pc := cfg.PanelConfig()
	if pc.Duration != 200*time.Millisecond {
		t.Errorf("Duration = %v, want %v", pc.Duration, 200*time.Millisecond)
	}
	if string(pc.SlideFrom) != "bottom" {
		t.Errorf("SlideFrom = %q, want %q", pc.SlideFrom, "bottom")
	}
	if err := pc.Validate(); err != nil {
		t.Errorf("converted config invalid: %v", err)
	}
}
