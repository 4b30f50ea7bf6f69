// Copyright 2026 The Diorama Authors. All rights reserved.

// Diorama-view renders a scene description in a window.
//
// Usage:
//
//	diorama-view [flags]
//
// With no -scene flag it renders a built-in still life. Texture
// paths named by the scene are resolved relative to -assets;
// missing image files degrade to untextured draws rather than
// aborting. Esc quits, the arrow keys orbit the camera and the
// plus/minus keys move it closer or farther.
package main

import (
	_ "embed"
	"flag"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/diorama-gl/diorama"
	_ "github.com/diorama-gl/diorama/driver/gl"
	"github.com/diorama-gl/diorama/engine"
	"github.com/diorama-gl/diorama/wsi"
)

//go:embed shaders/scene.vert
var vertexSrc string

//go:embed shaders/scene.frag
var fragmentSrc string

//go:embed still_life.yaml
var stillLife []byte

const (
	fov  = 45.0
	near = 0.1
	far  = 200.0
)

func init() {
	// The context and event handling are bound to the thread
	// that created the window.
	runtime.LockOSThread()
}

func main() {
	sceneFile := flag.String("scene", "", "scene description file; empty renders the built-in still life")
	assetDir := flag.String("assets", ".", "directory texture paths are resolved against")
	width := flag.Int("width", 1280, "window width in pixels")
	height := flag.Int("height", 800, "window height in pixels")
	verbose := flag.Bool("v", false, "log library diagnostics to stderr")
	flag.Parse()

	log := zap.Must(zap.NewDevelopment())
	defer log.Sync()

	if *verbose {
		engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(*sceneFile, *assetDir)
	if err != nil {
		log.Fatal("scene", zap.Error(err))
	}

	if err := wsi.Init(); err != nil {
		log.Fatal("wsi", zap.Error(err))
	}
	defer wsi.Terminate()

	win, err := wsi.NewWindow(*width, *height, "diorama")
	if err != nil {
		log.Fatal("window", zap.Error(err))
	}
	win.MakeCurrent()
	wsi.SwapInterval(1)

	drv, gpu, err := engine.Open("opengl")
	if err != nil {
		log.Fatal("driver", zap.Error(err))
	}
	defer drv.Close()
	log.Info("driver open", zap.String("name", drv.Name()))

	prog, err := gpu.NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		log.Fatal("program", zap.Error(err))
	}
	defer prog.Free()

	ses := engine.NewSession(gpu, prog)
	defer ses.Close()
	if err := ses.PrepareScene(scene); err != nil {
		log.Fatal("prepare", zap.Error(err))
	}
	log.Info("scene prepared",
		zap.Int("textures", len(scene.Textures)),
		zap.Int("materials", len(scene.Materials)),
		zap.Int("lights", len(scene.Lights)),
		zap.Int("objects", len(scene.Objects)))

	in := input{
		cam: camera{
			target: mgl32.Vec3{0, 2.5, 0},
			dist:   22,
			pitch:  15,
		},
	}
	wsi.SetWindowHandler(&in)
	wsi.SetKeyboardHandler(&in)

	if err := win.Map(); err != nil {
		log.Fatal("map", zap.Error(err))
	}
	w, h := win.DrawableSize()
	gpu.Viewport(w, h)

	for !in.quit {
		wsi.Dispatch()
		if in.resized {
			w, h = win.DrawableSize()
			gpu.Viewport(w, h)
			in.resized = false
		}
		if h == 0 {
			continue
		}

		gpu.Clear(0, 0, 0, 1)

		prog.Use()
		prog.SetMat4("view", in.cam.view())
		prog.SetMat4("projection", mgl32.Perspective(
			mgl32.DegToRad(fov), float32(w)/float32(h), near, far))
		prog.SetVec3("viewPosition", in.cam.eye())

		ses.RenderScene()
		win.Present()
	}
}

// loadScene reads the requested scene, or the built-in one,
// and rebases its texture paths onto the asset directory.
func loadScene(path, assets string) (*diorama.Scene, error) {
	var (
		s   *diorama.Scene
		err error
	)
	if path == "" {
		s, err = diorama.Parse(stillLife)
	} else {
		s, err = diorama.Load(path)
	}
	if err != nil {
		return nil, err
	}
	for i := range s.Textures {
		s.Textures[i].Path = filepath.Join(assets, s.Textures[i].Path)
	}
	return s, nil
}

// camera orbits a fixed target point.
type camera struct {
	target mgl32.Vec3
	dist   float32
	yaw    float32 // degrees about +Y
	pitch  float32 // degrees above the horizon
}

func (c *camera) eye() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	dir := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	return c.target.Add(dir.Mul(c.dist))
}

func (c *camera) view() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye(), c.target, mgl32.Vec3{0, 1, 0})
}

// input folds window and keyboard events into loop state.
type input struct {
	cam     camera
	quit    bool
	resized bool
}

func (in *input) WindowClose(win wsi.Window) { in.quit = true }

func (in *input) WindowResize(win wsi.Window, newWidth, newHeight int) {
	in.resized = true
}

func (in *input) KeyboardIn(win wsi.Window)  {}
func (in *input) KeyboardOut(win wsi.Window) {}

func (in *input) KeyboardKey(key wsi.Key, pressed bool, modMask wsi.Modifier) {
	if !pressed {
		return
	}
	const (
		step = 3
		zoom = 1
	)
	switch key {
	case wsi.KeyEsc:
		in.quit = true
	case wsi.KeyLeft:
		in.cam.yaw -= step
	case wsi.KeyRight:
		in.cam.yaw += step
	case wsi.KeyUp:
		in.cam.pitch = min(in.cam.pitch+step, 89)
	case wsi.KeyDown:
		in.cam.pitch = max(in.cam.pitch-step, -89)
	case wsi.KeyEqual, wsi.KeyPadPlus:
		in.cam.dist = max(in.cam.dist-zoom, 2)
	case wsi.KeyMinus, wsi.KeyPadMinus:
		in.cam.dist = min(in.cam.dist+zoom, 120)
	}
}
