package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const SceneFile = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec is the full tuning of the zoom journey.
type SceneSpec struct {
	Name    string      `yaml:"name"`
	Camera  CameraSpec  `yaml:"camera"`
	Flight  FlightSpec  `yaml:"flight"`
	Orbit   OrbitSpec   `yaml:"orbit"`
	Content ContentSpec `yaml:"content"`
	Audio   AudioSpec   `yaml:"audio"`
	Scene   SettingSpec `yaml:"scene"`
	HUD     HUDSpec     `yaml:"hud"`
	Script  string      `yaml:"script"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", SceneFile, err)
	}
	return &spec, nil
}

// ParseSceneSpec decodes and validates scene YAML held in memory.
func ParseSceneSpec(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type CameraSpec struct {
	Position Vec3Spec `yaml:"position"`
	FOV      float64  `yaml:"fov"`
	Near     float64  `yaml:"near"`
	Far      float64  `yaml:"far"`
}

type TweenSpec struct {
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

type FlightSpec struct {
	BaseDistance        float64   `yaml:"base_distance"`
	DistanceGain        float64   `yaml:"distance_gain"`
	BaseFOV             float64   `yaml:"base_fov"`
	FOVGain             float64   `yaml:"fov_gain"`
	FOVCap              float64   `yaml:"fov_cap"`
	MinFOV              float64   `yaml:"min_fov"`
	DeepSpaceThreshold  float64   `yaml:"deep_space_threshold"`
	AutoAdvance         float64   `yaml:"auto_advance"`
	AdvanceMode         string    `yaml:"advance_mode"`
	WheelScale          float64   `yaml:"wheel_scale"`
	WheelPixelsPerNotch float64   `yaml:"wheel_pixels_per_notch"`
	Smoothing           float64   `yaml:"smoothing"`
	LookAhead           float64   `yaml:"look_ahead"`
	ScrollTween         TweenSpec `yaml:"scroll_tween"`
	ExitTween           TweenSpec `yaml:"exit_tween"`
}

type OrbitSpec struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	Damping     float64 `yaml:"damping"`
	Glide       float64 `yaml:"glide"`
}

type DepthSpec struct {
	Start  float64 `yaml:"start"`
	Step   float64 `yaml:"step"`
	Jitter float64 `yaml:"jitter"`
}

type RadiusSpec struct {
	Min    float64 `yaml:"min"`
	Jitter float64 `yaml:"jitter"`
}

type SpawnSpec struct {
	Bucket       float64    `yaml:"bucket"`
	Base         int        `yaml:"base"`
	AngleStep    float64    `yaml:"angle_step"`
	Depth        DepthSpec  `yaml:"depth"`
	Radius       RadiusSpec `yaml:"radius"`
	HeightSpread float64    `yaml:"height_spread"`
}

type FogSpec struct {
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type ContentSpec struct {
	Spawners    map[string]SpawnSpec `yaml:"spawners"`
	StarCount   int                  `yaml:"star_count"`
	CloudPoints int                  `yaml:"cloud_points"`
	CloudCache  int                  `yaml:"cloud_cache"`
	Fog         FogSpec              `yaml:"fog"`
	BlackHole   FixedBlackHoleSpec   `yaml:"black_hole"`
	Wormhole    WormholeSpec         `yaml:"wormhole"`
}

type FixedBlackHoleSpec struct {
	Position Vec3Spec  `yaml:"position"`
	Size     float64   `yaml:"size"`
	Color    YAMLColor `yaml:"color"`
}

type WormholeSpec struct {
	Radius float64   `yaml:"radius"`
	Color  YAMLColor `yaml:"color"`
}

type SweepSpec struct {
	FromFreq float64 `yaml:"from_freq"`
	ToFreq   float64 `yaml:"to_freq"`
	FromGain float64 `yaml:"from_gain"`
	ToGain   float64 `yaml:"to_gain"`
	Duration float64 `yaml:"duration"`
}

type BedVoiceSpec struct {
	Freq        float64 `yaml:"freq"`
	Gain        float64 `yaml:"gain"`
	Range       float64 `yaml:"range"`
	WobbleDepth float64 `yaml:"wobble_depth"`
	WobbleRate  float64 `yaml:"wobble_rate"`
}

type PulseSpec struct {
	Threshold float64 `yaml:"threshold"`
	Freq      float64 `yaml:"freq"`
	Gain      float64 `yaml:"gain"`
	LFORate   float64 `yaml:"lfo_rate"`
	LFODepth  float64 `yaml:"lfo_depth"`
}

type AudioSpec struct {
	Ambient       BedVoiceSpec         `yaml:"ambient"`
	Drone         BedVoiceSpec         `yaml:"drone"`
	IntensitySpan float64              `yaml:"intensity_span"`
	Pulse         PulseSpec            `yaml:"pulse"`
	Whoosh        SweepSpec            `yaml:"whoosh"`
	Cues          map[string]SweepSpec `yaml:"cues"`
	CueLife       float64              `yaml:"cue_life"`
	Volume        float64              `yaml:"volume"`
}

type MoonSpec struct {
	Radius      float64 `yaml:"radius"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	Speed       float64 `yaml:"speed"`
}

type SettingSpec struct {
	RotationSpeed    float64  `yaml:"rotation_speed"`
	MaxRotationSpeed float64  `yaml:"max_rotation_speed"`
	PlanetRadius     float64  `yaml:"planet_radius"`
	Moon             MoonSpec `yaml:"moon"`
}

type HUDSpec struct {
	Background YAMLColor `yaml:"background"`
	Text       YAMLColor `yaml:"text"`
	Accent     YAMLColor `yaml:"accent"`
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}

// Validate rejects tuning that would stall or invert the journey.
func (s *SceneSpec) Validate() error {
	if s == nil {
		return invalid("nil spec")
	}
	f := s.Flight
	if f.DeepSpaceThreshold <= 0 {
		return invalid("flight.deep_space_threshold must be > 0, got %v", f.DeepSpaceThreshold)
	}
	if f.Smoothing <= 0 || f.Smoothing > 1 {
		return invalid("flight.smoothing must be in (0,1], got %v", f.Smoothing)
	}
	if f.ScrollTween.Duration <= 0 || f.ExitTween.Duration <= 0 {
		return invalid("flight tween durations must be > 0")
	}
	switch f.AdvanceMode {
	case "", "frame", "time":
	default:
		return invalid("flight.advance_mode must be frame or time, got %q", f.AdvanceMode)
	}
	if s.Orbit.MinDistance <= 0 || s.Orbit.MaxDistance < s.Orbit.MinDistance {
		return invalid("orbit distance range [%v,%v] is empty", s.Orbit.MinDistance, s.Orbit.MaxDistance)
	}
	for name, sp := range s.Content.Spawners {
		if sp.Bucket <= 0 {
			return invalid("content.spawners.%s.bucket must be > 0, got %v", name, sp.Bucket)
		}
		if sp.Base < 1 {
			return invalid("content.spawners.%s.base must be >= 1, got %d", name, sp.Base)
		}
	}
	if s.Audio.Whoosh.Duration < 0 || s.Audio.CueLife < 0 {
		return invalid("audio durations must not be negative")
	}
	for name, c := range s.Audio.Cues {
		if c.Duration <= 0 {
			return invalid("audio.cues.%s.duration must be > 0", name)
		}
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// RGBAOr returns the color, or fallback when none was configured.
func (c YAMLColor) RGBAOr(fallback color.RGBA) color.RGBA {
	if c.Color == nil {
		return fallback
	}
	r, g, b, a := c.Color.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
