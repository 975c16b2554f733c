package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/tatooine/camera"
	"github.com/paperboard/tatooine/internal/glsink"
	"github.com/paperboard/tatooine/matrix"
)

const (
	windowWidth  = 600
	windowHeight = 400
)

// off-centre frustum planes
const (
	frustumLeft   = -50
	frustumRight  = 50
	frustumTop    = 50
	frustumBottom = -50
	frustumNear   = 0.1
	frustumFar    = 100
)

// arrow keys move the model-view matrix in world space
var keyNudges = map[glfw.Key]matrix.Vec3{
	glfw.KeyLeft:  {-1, 0, 0},
	glfw.KeyRight: {1, 0, 0},
	glfw.KeyUp:    {0, 0, -0.05},
	glfw.KeyDown:  {0, 0, 0.05},
}

var (
	composer *camera.Composer
	sink     *glsink.FixedFunction
	logger   *slog.Logger
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	debug := flag.Bool("debug", false, "log every key press")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// initalize glfw
	err := glfw.Init()
	if err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	// use OpenGL v2.1
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	// create window handle
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Frustum 3D", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	// initialize OpenGL
	err = gl.Init()
	if err != nil {
		panic(err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	// pre-gameloop setup
	setup()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if delta, ok := keyNudges[key]; ok {
			composer.Nudge(delta)
		}
	})

	// run gameloop
	for !window.ShouldClose() {

		// draw into buffer
		draw()

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

}

func setup() {

	// cleared background color = black
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)

	// near things obscure far things
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	// caculate camera matrices
	setupCamera()

}

// draw a single quad as a triangle strip
//
//	v0------v1
//	|        |
//	v2------v3
func draw() {

	// upload only when a key moved the quad
	if composer.Phase() == camera.Dirty {
		if err := composer.Submit(sink); err != nil {
			logger.Warn("skipping camera update", "err", err)
		}
	}

	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Color4f(0.76, 0.2, 0.33, 1)
	gl.Begin(gl.TRIANGLE_STRIP)
	gl.Vertex2f(-10, 10)  // v0 = top-left
	gl.Vertex2f(10, 10)   // v1 = top-right
	gl.Vertex2f(-10, -10) // v2 = bottom-left
	gl.Vertex2f(10, -10)  // v3 = bottom-right
	gl.End()

	// check for accumulated OpenGL errors
	if err := glsink.CheckError(); err != nil {
		logger.Error("draw failed", "err", err)
	}

}

// Object Space -> Eye/World Space -> Clip Space -> NDC Space -> Viewport/Window Space
//
// The fixed pipeline keeps two matrix stacks. PROJECTION holds the frustum
// below, MODELVIEW holds the composer's camera matrix as-is, so moving the
// camera moves the quad.
//
// https://www.opengl.org/archives/resources/faq/technical/transformations.htm
// https://stackoverflow.com/questions/23309930/what-do-the-arguments-for-frustum-in-opengl-mean
// http://relativity.net.au/gaming/java/Frustum.html (INTERACTIVE)
func setupCamera() {

	cfg := camera.DefaultConfig()
	cfg.Position = matrix.Vec3{0, 0, -0.2}
	cfg.Aspect = float64(windowWidth) / float64(windowHeight)
	cfg.View = camera.CameraToWorld

	var err error
	composer, err = camera.New(cfg, logger)
	if err != nil {
		log.Fatalln("failed to create camera:", err)
	}

	projection, err := matrix.PerspectiveFrustum(frustumLeft, frustumRight, frustumTop, frustumBottom, frustumNear, frustumFar)
	if err != nil {
		log.Fatalln("failed to build frustum:", err)
	}
	composer.SetProjection(projection)

	sink = glsink.NewFixedFunction()

}
