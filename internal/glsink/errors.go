package glsink

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v2.1/gl"
)

var glErrorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// Error is an error flag reported by glGetError.
type Error uint32

func (e Error) Error() string {
	if name, ok := glErrorNames[uint32(e)]; ok {
		return "GL_ERROR: " + name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %v", uint32(e))
}

// getError reads one GL error flag; tests replace it.
var getError = gl.GetError

// CheckError drains the GL error flags and returns the first one.
func CheckError() error {
	var first error
	for {
		glerr := getError()
		if glerr == gl.NO_ERROR {
			break
		}
		if first == nil {
			first = Error(glerr)
		}
	}
	return first
}

// checkCall runs call and returns only the errors it raised. Flags left over
// from earlier calls (a viewport change in a resize callback, say) are
// drained first and logged.
func checkCall(what string, call func()) error {
	if stale := CheckError(); stale != nil {
		slog.Warn("GL error pending before call", "call", what, "err", stale)
	}
	call()
	return CheckError()
}
