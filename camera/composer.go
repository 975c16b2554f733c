// Package camera turns discrete input into view and model matrices for a
// first-person camera and hands them to the renderer once per frame.
//
// A Composer owns all camera state. It is driven from a single thread: input
// callbacks and the per-frame Submit are interleaved, never concurrent.
package camera

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/paperboard/tatooine/matrix"
)

// Phase tracks whether input has changed the matrices since the last
// successful Submit.
type Phase int

const (
	Idle Phase = iota
	Dirty
)

func (p Phase) String() string {
	if p == Dirty {
		return "dirty"
	}
	return "idle"
}

// State is the camera-to-world matrix plus the yaw and pitch accumulated
// from mouse motion since the last reset. Its basis rows are the camera's
// right, up and backward axes in world space; row 3 is its position.
type State struct {
	Camera     matrix.Mat4
	Yaw, Pitch float64
}

// Composer accumulates input into camera state and submits the matrices.
type Composer struct {
	cfg    Config
	log    *slog.Logger
	aspect float64

	state      State
	model      matrix.Mat4
	projection matrix.Mat4
	phase      Phase
}

// New returns an idle composer with the camera at cfg.Position. A nil
// logger means slog.Default().
func New(cfg Config, logger *slog.Logger) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	proj, err := cfg.projection(cfg.Aspect)
	if err != nil {
		return nil, err
	}
	return &Composer{
		cfg:        cfg,
		log:        logger,
		aspect:     cfg.Aspect,
		state:      State{Camera: matrix.Identity(cfg.Position)},
		model:      matrix.Identity(),
		projection: proj,
		phase:      Idle,
	}, nil
}

func (c *Composer) Phase() Phase { return c.phase }

func (c *Composer) State() State { return c.state }

func (c *Composer) Model() matrix.Mat4 { return c.model }

func (c *Composer) Projection() matrix.Mat4 { return c.projection }

func (c *Composer) Config() Config { return c.cfg }

// Position is the camera's location in world space.
func (c *Composer) Position() matrix.Vec3 {
	return matrix.Position(c.state.Camera)
}

// SetConvention changes what Submit hands to the view uniform.
func (c *Composer) SetConvention(v Convention) {
	c.cfg.View = v
	c.phase = Dirty
}

// View returns the matrix for the view uniform: the inverse of the camera
// matrix for WorldToCamera, the camera matrix itself otherwise.
func (c *Composer) View() (matrix.Mat4, error) {
	if c.cfg.View == CameraToWorld {
		return c.state.Camera, nil
	}
	return matrix.Inverse(c.state.Camera)
}

// Handle dispatches an input event. It reports whether the event changed
// the camera.
func (c *Composer) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case KeyEvent:
		return c.Key(ev.Dir)
	case MouseEvent:
		return c.Mouse(ev.DX, ev.DY)
	}
	c.log.Warn("ignoring unknown input event", "event", fmt.Sprintf("%T", ev))
	return false
}

// Key moves the camera one step along its own axes: forward is -z of the
// camera basis, strafing follows its x axis. Up and Down move along world y.
func (c *Composer) Key(d Direction) bool {
	cam := c.state.Camera
	var axis matrix.Vec3
	switch d {
	case Forward:
		axis = matrix.Scale(-1, matrix.Row(cam, 2))
	case Back:
		axis = matrix.Row(cam, 2)
	case StrafeRight:
		axis = matrix.Row(cam, 0)
	case StrafeLeft:
		axis = matrix.Scale(-1, matrix.Row(cam, 0))
	case Up:
		axis = matrix.Vec3{0, 1, 0}
	case Down:
		axis = matrix.Vec3{0, -1, 0}
	default:
		c.log.Warn("ignoring key event", "direction", d, "reason", "unknown direction")
		return false
	}

	n, err := matrix.Normalise(axis)
	if err != nil {
		c.log.Warn("ignoring key event", "direction", d, "err", err)
		return false
	}
	next := c.state
	next.Camera = matrix.Translate(cam, matrix.Scale(c.cfg.Step, n))
	return c.commit(next, "key", "direction", d)
}

// Nudge moves the camera by delta in world space, leaving its orientation
// alone.
func (c *Composer) Nudge(delta matrix.Vec3) bool {
	next := c.state
	next.Camera = matrix.Translate(c.state.Camera, delta)
	return c.commit(next, "nudge", "delta", delta)
}

// Mouse accumulates a pointer delta into yaw and pitch and rebuilds the
// camera basis from them as RotateX(-pitch)·RotateY(-yaw) at the current
// position. Rebuilding from the totals avoids drift and never rolls.
func (c *Composer) Mouse(dx, dy float64) bool {
	if !isFinite(dx) || !isFinite(dy) {
		c.log.Warn("ignoring mouse event", "dx", dx, "dy", dy, "reason", "non-finite delta")
		return false
	}
	yaw := c.state.Yaw + dx/c.cfg.SensitivityX
	pitch := c.state.Pitch + dy/c.cfg.SensitivityY
	if lim := matrix.DegToRad(c.cfg.PitchLimitDeg); lim > 0 {
		pitch = math.Max(-lim, math.Min(lim, pitch))
	}

	rot := matrix.Mul(matrix.RotateX(-pitch), matrix.RotateY(-yaw))
	next := State{
		Camera: matrix.Mul(rot, matrix.Identity(c.Position())),
		Yaw:    yaw,
		Pitch:  pitch,
	}
	return c.commit(next, "mouse", "yaw", yaw, "pitch", pitch)
}

// SetModel replaces the model matrix.
func (c *Composer) SetModel(m matrix.Mat4) bool {
	if !matrix.IsFinite(m) {
		c.log.Warn("ignoring model matrix", "reason", "non-finite")
		return false
	}
	c.model = m
	c.phase = Dirty
	return true
}

// SetProjection replaces the projection matrix, e.g. with an off-centre
// frustum. Resize and Apply rebuild the symmetric projection again.
func (c *Composer) SetProjection(m matrix.Mat4) bool {
	if !matrix.IsFinite(m) {
		c.log.Warn("ignoring projection matrix", "reason", "non-finite")
		return false
	}
	c.projection = m
	c.phase = Dirty
	return true
}

// Resize rebuilds the projection for a framebuffer of the given size.
// A zero sized framebuffer (minimised window) is ignored.
func (c *Composer) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		c.log.Debug("ignoring resize", "width", width, "height", height)
		return false
	}
	aspect := float64(width) / float64(height)
	proj, err := c.cfg.projection(aspect)
	if err != nil {
		c.log.Warn("ignoring resize", "width", width, "height", height, "err", err)
		return false
	}
	c.aspect = aspect
	c.projection = proj
	c.phase = Dirty
	return true
}

// Reset puts the camera back at the configured position with no rotation.
func (c *Composer) Reset() {
	c.state = State{Camera: matrix.Identity(c.cfg.Position)}
	c.phase = Dirty
}

// Apply swaps in new tuning values (step, sensitivities, pitch limit,
// projection, view convention). Position and rotation are kept; the
// aspect ratio stays the one of the current framebuffer.
func (c *Composer) Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	proj, err := cfg.projection(c.aspect)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.projection = proj
	c.phase = Dirty
	return nil
}

// Submit uploads projection, view and model to s. On failure the phase is
// left alone so the next frame retries; on success the composer is Idle.
func (c *Composer) Submit(s Sink) error {
	view, err := c.View()
	if err != nil {
		return fmt.Errorf("failed to compute view matrix: %w", err)
	}
	uniforms := []struct {
		slot Slot
		m    matrix.Mat4
	}{
		{SlotProjection, c.projection},
		{SlotView, view},
		{SlotModel, c.model},
	}
	for _, u := range uniforms {
		if !matrix.IsFinite(u.m) {
			return fmt.Errorf("refusing to submit non-finite %s matrix", u.slot)
		}
	}
	for _, u := range uniforms {
		if err := s.SetUniformMatrix(u.slot, u.m); err != nil {
			return fmt.Errorf("failed to set %s uniform: %w", u.slot, err)
		}
	}
	if c.phase == Dirty {
		c.log.Debug("submitted camera", "position", c.Position(), "yaw", c.state.Yaw, "pitch", c.state.Pitch)
	}
	c.phase = Idle
	return nil
}

func (c *Composer) commit(next State, source string, args ...any) bool {
	if !matrix.IsFinite(next.Camera) || !isFinite(next.Yaw) || !isFinite(next.Pitch) {
		c.log.Warn("ignoring input", "source", source, "reason", "non-finite camera")
		return false
	}
	c.state = next
	c.phase = Dirty
	c.log.Debug("camera moved", append([]any{"source", source}, args...)...)
	return true
}
