package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/tatooine/camera"
	"github.com/paperboard/tatooine/internal/glsink"
)

const (
	windowWidth        = 600
	windowHeight       = 400
	bytesFloat32       = 4 // a float32 is 4 bytes
	bytesUint32        = 4 // a uint32 is 4 bytes
	vertexPositionSize = 3 // x,y,z
	vertexColorSize    = 4 // r,g,b,a
	verticesPerQuad    = 4 // a rectangle has 4 vertices
	indicesPerQuad     = 6 // a rectangle has 6 indices
)

var (
	program              uint32
	vbo                  uint32
	ibo                  uint32
	attribVertexPosition uint32
	attribVertexColor    uint32

	composer *camera.Composer
	uniforms *glsink.Uniforms
	logger   *slog.Logger
)

// movement keys, WASD and arrows
var keyDirections = map[glfw.Key]camera.Direction{
	glfw.KeyW:         camera.Forward,
	glfw.KeyUp:        camera.Forward,
	glfw.KeyS:         camera.Back,
	glfw.KeyDown:      camera.Back,
	glfw.KeyA:         camera.StrafeLeft,
	glfw.KeyLeft:      camera.StrafeLeft,
	glfw.KeyD:         camera.StrafeRight,
	glfw.KeyRight:     camera.StrafeRight,
	glfw.KeySpace:     camera.Up,
	glfw.KeyLeftShift: camera.Down,
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	configPath := flag.String("config", "", "camera config file (TOML)")
	watch := flag.Bool("watch", false, "reload the camera config when the file changes")
	debug := flag.Bool("debug", false, "log every camera update")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// camera settings
	cfg := camera.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = camera.LoadConfig(*configPath)
		if err != nil {
			log.Fatalln("failed to load camera config:", err)
		}
	}

	var err error
	composer, err = camera.New(cfg, logger)
	if err != nil {
		log.Fatalln("failed to create camera:", err)
	}
	useWorldToCamera()

	var reloads <-chan camera.Config
	if *watch && *configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		reloads, err = camera.Watch(ctx, *configPath, logger)
		if err != nil {
			log.Fatalln("failed to watch camera config:", err)
		}
	}

	// initalize glfw
	err = glfw.Init()
	if err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	// use OpenGL v2.1
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	// create window handle
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Cube 3D", nil, nil)
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

	// input goes straight to the composer, matrices go out once per frame
	setupInput(window)

	// load game objects
	load()

	// pre-gameloop setup
	setup()

	// size the projection to the real framebuffer (hi-dpi screens)
	fbWidth, fbHeight := window.GetFramebufferSize()
	resize(window, fbWidth, fbHeight)

	// run gameloop
	for !window.ShouldClose() {

		// config edits arrive from the watcher goroutine
		select {
		case next, ok := <-reloads:
			if ok {
				if err := composer.Apply(next); err != nil {
					logger.Warn("ignoring camera config", "err", err)
				}
				useWorldToCamera()
			}
		default:
		}

		// draw into buffer
		draw()

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

}

// the shader below multiplies by the view matrix, it cannot invert it
func useWorldToCamera() {
	if composer.Config().View != camera.WorldToCamera {
		logger.Warn("shader expects a world-to-camera view matrix, overriding config", "view", composer.Config().View)
		composer.SetConvention(camera.WorldToCamera)
	}
}

func setupInput(window *glfw.Window) {

	// keys move the camera, R resets it, escape quits
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyR:
			composer.Reset()
		default:
			if dir, ok := keyDirections[key]; ok {
				composer.Handle(camera.KeyEvent{Dir: dir})
			}
		}
	})

	// glfw reports absolute cursor positions, the camera wants deltas
	var lastX, lastY float64
	firstMouse := true
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if firstMouse {
			// prevent large visual jump
			lastX, lastY = x, y
			firstMouse = false
			return
		}
		composer.Handle(camera.MouseEvent{DX: x - lastX, DY: y - lastY})
		lastX, lastY = x, y
	})

	window.SetFramebufferSizeCallback(resize)

}

func resize(_ *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	composer.Resize(width, height)
}

func setup() {

	// cleared background color = gray
	gl.ClearColor(0.5, 0.5, 0.5, 1)

	// do not render parts of shapes (pixels) that will
	// anyhow be covered up by closer shapes (pixels)
	gl.Enable(gl.DEPTH_TEST)

	// if multiple shapes have same z-value, take their
	// draw order in account and show if possible
	gl.DepthFunc(gl.LEQUAL)

	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// create shader program
	setupProgram()

	// prepare vbo/ibo buffers
	setupBuffers()

}

// unit cube
//
//	  v6----- v5
//	 /|      /|
//	v1------v0|
//	| |     | |
//	| v7----|-v4
//	|/      |/
//	v2------v3
var cubeCorners = [8][3]float32{
	{0.5, 0.5, 0.5},    // v0
	{-0.5, 0.5, 0.5},   // v1
	{-0.5, -0.5, 0.5},  // v2
	{0.5, -0.5, 0.5},   // v3
	{0.5, -0.5, -0.5},  // v4
	{0.5, 0.5, -0.5},   // v5
	{-0.5, 0.5, -0.5},  // v6
	{-0.5, -0.5, -0.5}, // v7
}

var quadVertices = make([]float32, 0, 100) // size 100 doesn't matter
var quadColors = make([]float32, 0, 100)
var quadIndices = make([]uint32, 0, 100)

// makeFace appends one side of the cube from four corner indices
func makeFace(a, b, c, d int, clr color.Color) {
	for _, i := range [4]int{a, b, c, d} {
		quadVertices = append(quadVertices, cubeCorners[i][:]...)
	}
	quadColors = append(quadColors, makeQuadColors(clr)...)
	quadIndices = append(quadIndices, makeQuadIndices()...)
}

func makeQuadColors(c color.Color) []float32 {
	r, g, b, a := c.RGBA()
	rgba := []float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
	colors := make([]float32, 0, verticesPerQuad*vertexColorSize)
	for i := 0; i < verticesPerQuad; i++ {
		colors = append(colors, rgba...)
	}
	return colors
}

func makeQuadIndices() []uint32 {
	rectangleCount := len(quadVertices) / (verticesPerQuad * vertexPositionSize)
	i := uint32((rectangleCount - 1)) * verticesPerQuad
	return []uint32{
		i, i + 1, i + 2, // first triangle
		i, i + 2, i + 3, // second triangle
	}
}

func quadDebugPrint() {
	logger.Debug("cube loaded",
		"faces", len(quadIndices)/indicesPerQuad,
		"vertices", len(quadVertices)/vertexPositionSize,
		"colors", len(quadColors)/vertexColorSize,
		"indices", len(quadIndices))
}

func load() {

	makeFace(0, 1, 2, 3, color.NRGBA{0xff, 0, 0, 0xff})    // front = red
	makeFace(0, 3, 4, 5, color.NRGBA{0, 0xff, 0, 0xff})    // right = green
	makeFace(0, 5, 6, 1, color.NRGBA{0, 0, 0xff, 0xff})    // top = blue
	makeFace(1, 6, 7, 2, color.NRGBA{0xff, 0xff, 0, 0xff}) // left = yellow
	makeFace(7, 4, 3, 2, color.NRGBA{0, 0xff, 0xff, 0xff}) // bottom = cyan
	makeFace(4, 7, 6, 5, color.NRGBA{0xff, 0, 0xff, 0xff}) // back = magenta

	// print debug info for shapes
	quadDebugPrint()

}

func draw() {

	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// bind program
	gl.UseProgram(program)

	// projection, view and model; a failed upload keeps last frame's
	// matrices and is retried on the next frame
	if err := composer.Submit(uniforms); err != nil {
		logger.Warn("skipping camera update", "err", err)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)              // bind vertex buffer
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)      // bind indices buffer
	gl.EnableVertexAttribArray(attribVertexPosition) // enable vertex position
	gl.EnableVertexAttribArray(attribVertexColor)    // enable vertex color

	// configure and enable vertex position
	gl.VertexAttribPointer(attribVertexPosition, vertexPositionSize, gl.FLOAT, false, 0, gl.PtrOffset(0*bytesFloat32)) // PtrOffset = vertices position start at start of array (offset = 0)

	// configure and enable vertex color
	gl.VertexAttribPointer(attribVertexColor, vertexColorSize, gl.FLOAT, false, 0, gl.PtrOffset(len(quadVertices)*bytesFloat32)) // PtrOffset = colors start after vertices position

	// draw cube faces
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0*bytesUint32))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)                 // unbind vertex buffer
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)         // unbind indices buffer
	gl.DisableVertexAttribArray(attribVertexPosition) // disable vertex position
	gl.DisableVertexAttribArray(attribVertexColor)    // disable vertex color

	// check for accumulated OpenGL errors
	if err := glsink.CheckError(); err != nil {
		logger.Error("draw failed", "err", err)
	}

}

// https://en.wikipedia.org/wiki/Vertex_buffer_object
// https://www.songho.ca/opengl/gl_vbo.html#create
func setupBuffers() {

	// vertices position and color are both float32, colors follow positions
	bytesTotalSize := (len(quadVertices) + len(quadColors)) * bytesFloat32

	// create VBOs
	gl.GenBuffers(1, &vbo) // for vertex buffer
	gl.GenBuffers(1, &ibo) // for index buffer

	// copy vertex data to VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, bytesTotalSize, nil, gl.STATIC_DRAW)                                                 // initalize but do not copy any data
	gl.BufferSubData(gl.ARRAY_BUFFER, 0*bytesFloat32, len(quadVertices)*bytesFloat32, gl.Ptr(quadVertices))             // copy vertices starting from 0 offest
	gl.BufferSubData(gl.ARRAY_BUFFER, len(quadVertices)*bytesFloat32, len(quadColors)*bytesFloat32, gl.Ptr(quadColors)) // copy colors after vertices
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// copy index data to VBO
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*bytesUint32, gl.Ptr(quadIndices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

}

func setupProgram() {

	var err error

	// configure program, load shaders, and link attributes
	program, err = glsink.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		panic(err)
	}
	gl.UseProgram(program)

	// get attribute index for later use
	attribVertexPosition = uint32(gl.GetAttribLocation(program, gl.Str("vertexPosition\x00")))
	attribVertexColor = uint32(gl.GetAttribLocation(program, gl.Str("vertexColor\x00")))

	// projection, view and model uniforms fed by the camera
	uniforms, err = glsink.NewUniforms(program)
	if err != nil {
		panic(err)
	}

}

// Object Space -> World Space -> Eye Space -> Clip Space -> NDC Space
//
// The model matrix maps object coordinates to world coordinates. The view
// matrix maps world coordinates to eye coordinates; it is the inverse of the
// camera matrix the composer accumulates from input. The projection matrix
// maps eye coordinates to clip coordinates.
//
// https://learnopengl.com/Getting-started/Coordinate-Systems
// https://learnopengl.com/Getting-started/Camera
var vertexShader = `
#version 120

// input
uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

// input
attribute vec3 vertexPosition;
attribute vec4 vertexColor;

// output
varying vec4 fragmentColor;

void main() {
	fragmentColor = vertexColor;
	gl_Position = projection * view * model * vec4(vertexPosition, 1);
}
` + "\x00"

var fragmentShader = `
#version 120

// input
varying vec4 fragmentColor;

void main() {
	gl_FragColor = fragmentColor;
}
` + "\x00"
