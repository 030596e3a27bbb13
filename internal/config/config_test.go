package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg Config)
	}{
		{
			name:       "missing file falls back to defaults",
			createFile: false,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Locomotion.MaxVelocity != 20 {
					t.Errorf("MaxVelocity = %v, want 20", cfg.Locomotion.MaxVelocity)
				}
			},
		},
		{
			name:       "partial file keeps other defaults",
			createFile: true,
			content: `locomotion:
  max_velocity: 25
  height_interval: 250ms
camera:
  distance: 12
input:
  layout: qwerty
`,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Locomotion.MaxVelocity != 25 {
					t.Errorf("MaxVelocity = %v, want 25", cfg.Locomotion.MaxVelocity)
				}
				if cfg.Locomotion.HeightInterval != 250*time.Millisecond {
					t.Errorf("HeightInterval = %v, want 250ms", cfg.Locomotion.HeightInterval)
				}
				if cfg.Locomotion.MoveSpeed != 1.2 {
					t.Errorf("MoveSpeed = %v, want default 1.2", cfg.Locomotion.MoveSpeed)
				}
				if cfg.Camera.Distance != 12 || cfg.Camera.Height != 5 {
					t.Errorf("Camera = %+v, want distance 12 and default height 5", cfg.Camera)
				}
				if cfg.Input.Layout != "qwerty" {
					t.Errorf("Layout = %q, want qwerty", cfg.Input.Layout)
				}
			},
		},
		{
			name:       "malformed yaml",
			createFile: true,
			content:    "locomotion: [unclosed",
			wantErr:    true,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Camera.Distance != 10 {
					t.Errorf("expected defaults on error, got camera distance %v", cfg.Camera.Distance)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			}
			cfg, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.yaml")
	cfg := Default()
	cfg.Locomotion.StopThreshold = 0.4
	cfg.Telemetry.Enabled = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "height_interval: 100ms") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	bad := Default()
	bad.Locomotion.Friction = 1.5
	bad.Input.Layout = "dvorak"
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"friction", "dvorak"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Default()
	c := orig.Clone()
	c.Locomotion.MaxVelocity = 99
	if orig.Locomotion.MaxVelocity != 20 {
		t.Errorf("clone mutated original: %v", orig.Locomotion.MaxVelocity)
	}
	if c.Camera != orig.Camera {
		t.Errorf("clone lost camera settings: %+v", c.Camera)
	}
}

func TestMaxPitch(t *testing.T) {
	c := Camera{MaxPitchDeg: 180}
	if got := c.MaxPitch(); got < 3.1415 || got > 3.1417 {
		t.Errorf("MaxPitch() = %v, want pi", got)
	}
}
