package camera

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/paperboard/tatooine/matrix"
)

// Config holds the camera tuning values. It is usually read from a TOML
// file; keys that are absent keep their DefaultConfig value.
type Config struct {
	// starting position of the camera in world space
	Position matrix.Vec3 `toml:"position"`
	// distance moved by one key press
	Step float64 `toml:"step"`
	// pixels of mouse motion per radian of yaw and pitch
	SensitivityX float64 `toml:"sensitivity_x"`
	SensitivityY float64 `toml:"sensitivity_y"`
	// pitch is clamped to ±PitchLimitDeg, 0 disables the clamp
	PitchLimitDeg float64 `toml:"pitch_limit_deg"`

	FOVDeg float64 `toml:"fov_deg"`
	Aspect float64 `toml:"aspect"`
	Near   float64 `toml:"near"`
	Far    float64 `toml:"far"`

	View Convention `toml:"view"`
}

func DefaultConfig() Config {
	return Config{
		Position:      matrix.Vec3{0, 0, 3},
		Step:          0.1,
		SensitivityX:  500,
		SensitivityY:  500,
		PitchLimitDeg: 89,
		FOVDeg:        45,
		Aspect:        600.0 / 400.0,
		Near:          0.1,
		Far:           100,
		View:          WorldToCamera,
	}
}

// ParseConfig decodes TOML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode camera config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read camera config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value yields finite matrices.
func (c Config) Validate() error {
	for i, v := range c.Position {
		if !isFinite(v) {
			return fmt.Errorf("invalid camera config: position[%d] is %g", i, v)
		}
	}
	if !(c.Step > 0) || !isFinite(c.Step) {
		return fmt.Errorf("invalid camera config: step %g must be positive", c.Step)
	}
	if c.SensitivityX == 0 || c.SensitivityY == 0 || !isFinite(c.SensitivityX) || !isFinite(c.SensitivityY) {
		return fmt.Errorf("invalid camera config: sensitivity (%g, %g) must be non-zero", c.SensitivityX, c.SensitivityY)
	}
	if !(c.PitchLimitDeg >= 0 && c.PitchLimitDeg <= 90) {
		return fmt.Errorf("invalid camera config: pitch limit %g outside [0, 90]", c.PitchLimitDeg)
	}
	if _, err := c.projection(c.Aspect); err != nil {
		return fmt.Errorf("invalid camera config: %w", err)
	}
	return nil
}

func (c Config) projection(aspect float64) (matrix.Mat4, error) {
	return matrix.Perspective(matrix.DegToRad(c.FOVDeg), aspect, c.Near, c.Far)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
