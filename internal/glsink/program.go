// Package glsink is the OpenGL side of the camera: it builds shader
// programs and uploads the composer's matrices as uniforms.
//
// Matrices are uploaded with transpose=false. The kernel's row-major,
// row-vector layout is the same flat array as GL's column-major,
// column-vector one.
//
// Everything here must run on the thread that owns the GL context.
package glsink

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

// NewProgram compiles both shaders and links them. Shader sources must be
// NUL terminated.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {

	vertexShader, err := CompileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := CompileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))

	}

	return program, nil

}

// CompileShader compiles a single shader of the given type
// (gl.VERTEX_SHADER or gl.FRAGMENT_SHADER).
func CompileShader(source string, shaderType uint32) (uint32, error) {

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", shaderName(shaderType), strings.TrimRight(log, "\x00"))

	}

	return shader, nil

}

func shaderName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}
