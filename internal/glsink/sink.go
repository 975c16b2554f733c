package glsink

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/paperboard/tatooine/camera"
	"github.com/paperboard/tatooine/matrix"
)

// Uniforms uploads matrices to the mat4 uniforms of a linked program. The
// uniforms are named after the slots: "projection", "view" and "model".
type Uniforms struct {
	program   uint32
	locations map[camera.Slot]int32
}

// NewUniforms looks up the uniform locations of program. Every slot must be
// an active uniform.
func NewUniforms(program uint32) (*Uniforms, error) {
	u := &Uniforms{program: program, locations: make(map[camera.Slot]int32)}
	for _, slot := range []camera.Slot{camera.SlotProjection, camera.SlotView, camera.SlotModel} {
		loc := gl.GetUniformLocation(program, gl.Str(slot.String()+"\x00"))
		if loc < 0 {
			return nil, fmt.Errorf("uniform %q not found in program %d", slot, program)
		}
		u.locations[slot] = loc
	}
	return u, nil
}

func (u *Uniforms) SetUniformMatrix(slot camera.Slot, m matrix.Mat4) error {
	loc, ok := u.locations[slot]
	if !ok {
		return fmt.Errorf("no uniform for slot %s", slot)
	}
	f := matrix.Float32(m)
	return checkCall("upload "+slot.String(), func() {
		gl.UseProgram(u.program)
		gl.UniformMatrix4fv(loc, 1, false, &f[0])
	})
}

// FixedFunction feeds the GL 2.1 fixed pipeline. The projection goes to
// GL_PROJECTION; view and model are folded into GL_MODELVIEW as model·view.
type FixedFunction struct {
	view, model matrix.Mat4
}

func NewFixedFunction() *FixedFunction {
	return &FixedFunction{view: matrix.Identity(), model: matrix.Identity()}
}

func (f *FixedFunction) SetUniformMatrix(slot camera.Slot, m matrix.Mat4) error {
	switch slot {
	case camera.SlotProjection:
		return checkCall("load projection", func() {
			gl.MatrixMode(gl.PROJECTION)
			gl.LoadMatrixd(&m[0])
		})
	case camera.SlotView:
		f.view = m
	case camera.SlotModel:
		f.model = m
	default:
		return fmt.Errorf("no matrix mode for slot %s", slot)
	}
	return checkCall("load "+slot.String(), f.loadModelView)
}

func (f *FixedFunction) loadModelView() {
	mv := matrix.Mul(f.model, f.view)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&mv[0])
}
