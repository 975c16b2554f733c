package camera

import (
	"fmt"

	"github.com/paperboard/tatooine/matrix"
)

// Slot names a matrix uniform of the rendering boundary.
type Slot int

const (
	SlotModel Slot = iota
	SlotView
	SlotProjection
)

// String is the uniform name used in the shaders.
func (s Slot) String() string {
	switch s {
	case SlotModel:
		return "model"
	case SlotView:
		return "view"
	case SlotProjection:
		return "projection"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// Sink uploads a 16 element matrix to the renderer. An error means nothing
// usable reached the GPU for this frame.
type Sink interface {
	SetUniformMatrix(slot Slot, m matrix.Mat4) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(slot Slot, m matrix.Mat4) error

func (f SinkFunc) SetUniformMatrix(slot Slot, m matrix.Mat4) error {
	return f(slot, m)
}

// Convention selects what the view uniform receives.
type Convention int

const (
	// WorldToCamera submits the inverse of the camera matrix, for shaders
	// computing projection * view * model * vertex. For an unrotated camera
	// its translation row is the negated position, so a forward step along
	// -z submits +step in z.
	WorldToCamera Convention = iota
	// CameraToWorld submits the camera matrix itself, for shaders that
	// invert it on the GPU.
	CameraToWorld
)

func (c Convention) String() string {
	switch c {
	case WorldToCamera:
		return "world-to-camera"
	case CameraToWorld:
		return "camera-to-world"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

func (c Convention) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Convention) UnmarshalText(text []byte) error {
	switch string(text) {
	case "world-to-camera", "":
		*c = WorldToCamera
	case "camera-to-world":
		*c = CameraToWorld
	default:
		return fmt.Errorf("unknown view convention %q", text)
	}
	return nil
}
