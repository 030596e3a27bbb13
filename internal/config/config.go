package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the game config file, relative to the process working directory.
const DefaultPath = "config/game.yaml"

// Config holds every tunable of the game. Persisted as YAML; fields missing from the file keep their defaults.
type Config struct {
	Window     Window     `yaml:"window"`
	Terrain    Terrain    `yaml:"terrain"`
	Physics    Physics    `yaml:"physics"`
	Player     Player     `yaml:"player"`
	Locomotion Locomotion `yaml:"locomotion"`
	Camera     Camera     `yaml:"camera"`
	Visited    Visited    `yaml:"visited"`
	Input      Input      `yaml:"input"`
	Logging    Logging    `yaml:"logging"`
	Telemetry  Telemetry  `yaml:"telemetry"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Terrain drives mapgen. Width/Depth are in tiles; the world span is Width*TileSize.
type Terrain struct {
	Width       int     `yaml:"width"`
	Depth       int     `yaml:"depth"`
	TileSize    float32 `yaml:"tile_size"`
	HeightScale float32 `yaml:"height_scale"`
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float32 `yaml:"frequency"`
}

type Physics struct {
	Gravity float32 `yaml:"gravity"`
}

type Player struct {
	Radius float32 `yaml:"radius"`
	Mass   float32 `yaml:"mass"`
	// SpawnHeight is added to the highest terrain point.
	SpawnHeight float32 `yaml:"spawn_height"`
}

type Locomotion struct {
	MoveSpeed          float32       `yaml:"move_speed"`
	Friction           float32       `yaml:"friction"`
	StopFriction       float32       `yaml:"stop_friction"`
	MaxVelocity        float32       `yaml:"max_velocity"`
	StopThreshold      float32       `yaml:"stop_threshold"`
	GroundRayOffset    float32       `yaml:"ground_ray_offset"`
	GroundRayDistance  float32       `yaml:"ground_ray_distance"`
	FlatThreshold      float32       `yaml:"flat_threshold"`
	AccelerationFactor float32       `yaml:"acceleration_factor"`
	DecelerationFactor float32       `yaml:"deceleration_factor"`
	MinSlopeFactor     float32       `yaml:"min_slope_factor"`
	HeightInterval     time.Duration `yaml:"height_interval"`
}

type Camera struct {
	Distance     float32       `yaml:"distance"`
	Height       float32       `yaml:"height"`
	Sensitivity  float32       `yaml:"sensitivity"`
	MaxPitchDeg  float32       `yaml:"max_pitch_deg"`
	CaptureDelay time.Duration `yaml:"capture_delay"`
}

type Visited struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Radius float32 `yaml:"radius"`
	// WorldSize is the world span mapped onto the raster; 0 means max(Width, Height).
	WorldSize float32 `yaml:"world_size"`
}

type Input struct {
	Layout string `yaml:"layout"`
}

type Logging struct {
	File          string        `yaml:"file"`
	DebugInterval time.Duration `yaml:"debug_interval"`
}

type Telemetry struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the tuning the game ships with.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "fog-explorer", TargetFPS: 60},
		Terrain: Terrain{
			Width:       48,
			Depth:       48,
			TileSize:    6.25,
			HeightScale: 12,
			Octaves:     4,
			Frequency:   0.08,
		},
		Physics: Physics{Gravity: -8},
		Player:  Player{Radius: 0.5, Mass: 1, SpawnHeight: 5},
		Locomotion: Locomotion{
			MoveSpeed:          1.2,
			Friction:           0.95,
			StopFriction:       0.5,
			MaxVelocity:        20,
			StopThreshold:      0.3,
			GroundRayOffset:    0.2,
			GroundRayDistance:  1.5,
			FlatThreshold:      0.005,
			AccelerationFactor: 0.8,
			DecelerationFactor: 0.6,
			MinSlopeFactor:     0.5,
			HeightInterval:     100 * time.Millisecond,
		},
		Camera: Camera{
			Distance:     10,
			Height:       5,
			Sensitivity:  0.002,
			MaxPitchDeg:  20,
			CaptureDelay: 500 * time.Millisecond,
		},
		Visited:   Visited{Width: 300, Height: 300, Radius: 10},
		Input:     Input{Layout: "azerty"},
		Logging:   Logging{File: "logs/game.txt", DebugInterval: 500 * time.Millisecond},
		Telemetry: Telemetry{Addr: "127.0.0.1:8089", Interval: 100 * time.Millisecond},
	}
}

// MaxPitch returns the camera pitch bound in radians.
func (c Camera) MaxPitch() float32 {
	return c.MaxPitchDeg * math32.Pi / 180
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		return c
	}
	return out
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Terrain.Width <= 0 || c.Terrain.Depth <= 0 || c.Terrain.TileSize <= 0 {
		errs = append(errs, errors.New("terrain: width, depth and tile_size must be positive"))
	}
	if c.Player.Radius <= 0 || c.Player.Mass <= 0 {
		errs = append(errs, errors.New("player: radius and mass must be positive"))
	}
	l := c.Locomotion
	if l.MaxVelocity <= 0 {
		errs = append(errs, errors.New("locomotion: max_velocity must be positive"))
	}
	if l.Friction <= 0 || l.Friction > 1 || l.StopFriction <= 0 || l.StopFriction > 1 {
		errs = append(errs, errors.New("locomotion: friction coefficients must be in (0, 1]"))
	}
	if l.GroundRayDistance <= 0 {
		errs = append(errs, errors.New("locomotion: ground_ray_distance must be positive"))
	}
	if l.MinSlopeFactor <= 0 {
		errs = append(errs, errors.New("locomotion: min_slope_factor must be positive"))
	}
	if c.Camera.Distance <= 0 || c.Camera.MaxPitchDeg < 0 || c.Camera.MaxPitchDeg >= 90 {
		errs = append(errs, errors.New("camera: distance must be positive and max_pitch_deg in [0, 90)"))
	}
	if c.Visited.Width <= 0 || c.Visited.Height <= 0 || c.Visited.Radius <= 0 {
		errs = append(errs, errors.New("visited: width, height and radius must be positive"))
	}
	if c.Input.Layout != "azerty" && c.Input.Layout != "qwerty" {
		errs = append(errs, fmt.Errorf("input: unknown layout %q", c.Input.Layout))
	}
	return errors.Join(errs...)
}

// Load reads the config at path on top of Default(). A missing file is not an error.
// A malformed file returns Default() together with the parse error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
