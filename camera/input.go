package camera

import "fmt"

// Direction is a discrete movement key.
type Direction int

const (
	Forward Direction = iota
	Back
	StrafeLeft
	StrafeRight
	Up
	Down
)

var directionNames = [...]string{"forward", "back", "strafe-left", "strafe-right", "up", "down"}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Event is an input event accepted by Composer.Handle.
type Event interface {
	event()
}

// KeyEvent is a single press of a movement key.
type KeyEvent struct {
	Dir Direction
}

// MouseEvent is a pointer motion delta in pixels.
type MouseEvent struct {
	DX, DY float64
}

func (KeyEvent) event()   {}
func (MouseEvent) event() {}
