// Package viewer implements the main loop and state of the planet viewer.
package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/lumenforge/orrery/internal/assets"
	"github.com/lumenforge/orrery/internal/config"
	"github.com/lumenforge/orrery/internal/engine/camera"
	"github.com/lumenforge/orrery/internal/engine/debug"
	"github.com/lumenforge/orrery/internal/engine/geometry"
	"github.com/lumenforge/orrery/internal/engine/input"
	"github.com/lumenforge/orrery/internal/engine/overlay"
	"github.com/lumenforge/orrery/internal/engine/renderer"
	"github.com/lumenforge/orrery/internal/engine/window"
	"github.com/lumenforge/orrery/internal/logger"
	"github.com/lumenforge/orrery/internal/scene"
	"github.com/lumenforge/orrery/pkg/formats"
)

const (
	sphereRings   = 50
	sphereSectors = 50
	ringInner     = 1.3
	ringOuter     = 2.0
	ringSegments  = 100
)

// Viewer is the running application instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window        *window.Window
	renderer      *renderer.Renderer
	sceneRenderer *scene.Renderer
	overlay       *overlay.Renderer
	input         *input.Input
	camera        *camera.OrbitCamera
	assets        *assets.Manager
	capture       *debug.ScreenshotCapture
	watcher       *ModelWatcher

	sphereMesh *renderer.GPUMesh
	ringMesh   *renderer.GPUMesh
	modelMesh  *renderer.GPUMesh
	modelPath  string
	useModel   bool

	scenes  []*scene.Scene
	current int

	paused   bool
	animTime float32

	showFPS  bool
	showHelp bool
	fps      float64

	dragging   bool
	lastMouseX int
	lastMouseY int

	// pendingModel carries paths picked in the file dialog goroutine
	// back to the main thread, which owns all GL and SDL calls.
	pendingModel chan string
}

// New creates the viewer: window, GL state, meshes, scenes and HUD.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:          cfg,
		showFPS:      cfg.Viewer.ShowFPS,
		showHelp:     cfg.Viewer.ShowHelp,
		assets:       assets.NewManager(),
		pendingModel: make(chan string, 1),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Orrery",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	v.sceneRenderer, err = scene.NewRenderer()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("compiling scene shaders: %w", err)
	}

	v.overlay, err = overlay.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		v.sceneRenderer.Destroy()
		v.window.Close()
		return nil, fmt.Errorf("creating overlay: %w", err)
	}

	v.input = input.New()
	v.camera = camera.New()
	v.capture = debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "orrery")

	sphere := geometry.UVSphere(1.0, sphereRings, sphereSectors)
	ring := geometry.Ring(ringInner, ringOuter, ringSegments)
	v.sphereMesh = renderer.UploadMesh(sphere)
	v.ringMesh = renderer.UploadMesh(ring)
	logger.Info("geometry built",
		zap.Int("sphere_triangles", sphere.TriangleCount()),
		zap.Int("ring_triangles", ring.TriangleCount()),
	)

	if cfg.Viewer.ModelPath != "" {
		if err := v.loadModel(cfg.Viewer.ModelPath); err != nil {
			logger.Warn("model unavailable, using procedural sphere",
				zap.String("path", cfg.Viewer.ModelPath),
				zap.Error(err),
			)
		}
	}

	v.rebuildScenes()
	v.current = cfg.Viewer.StartScene
	if v.current < 0 || v.current >= len(v.scenes) {
		v.current = 0
	}
	v.applySceneTitle()

	return v, nil
}

// Run enters the main loop and blocks until the viewer quits.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	frameBudget := time.Duration(0)
	if !v.cfg.Graphics.VSync && v.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	logger.Info("entering main loop")

	for v.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}
		v.drainAsyncWork()

		if !v.paused {
			v.animTime += dt
		}
		v.scenes[v.current].Update(v.animTime)

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.fps = float64(frameCount) / time.Since(fpsTimer).Seconds()
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}

	logger.Info("main loop finished")
	return nil
}

// Close releases all resources.
func (v *Viewer) Close() {
	if v.watcher != nil {
		v.watcher.Close()
	}
	if v.overlay != nil {
		v.overlay.Close()
	}
	if v.sceneRenderer != nil {
		v.sceneRenderer.Destroy()
	}
	for _, m := range []*renderer.GPUMesh{v.sphereMesh, v.ringMesh, v.modelMesh} {
		if m != nil {
			m.Destroy()
		}
	}
	if v.assets != nil {
		v.assets.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		v.running = false

	case input.EventWindowResize:
		v.renderer.Resize(e.Width, e.Height)
		v.overlay.Resize(e.Width, e.Height)

	case input.EventKeyDown:
		v.handleKey(e.Key)

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = true
			v.lastMouseX, v.lastMouseY = e.MouseX, e.MouseY
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = false
		}

	case input.EventMouseMove:
		if v.dragging {
			dx := float32(e.MouseX - v.lastMouseX)
			dy := float32(e.MouseY - v.lastMouseY)
			v.camera.HandleDrag(dx, dy)
			v.lastMouseX, v.lastMouseY = e.MouseX, e.MouseY
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(e.Scroll)
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4, sdl.SCANCODE_5:
		v.switchScene(int(key - sdl.SCANCODE_1))

	case sdl.SCANCODE_SPACE:
		v.paused = !v.paused
		logger.Debug("pause toggled", zap.Bool("paused", v.paused))

	case sdl.SCANCODE_M:
		if v.modelMesh == nil {
			logger.Warn("no model loaded, staying on procedural sphere")
			return
		}
		v.useModel = !v.useModel
		v.rebuildScenes()
		logger.Info("mesh source switched", zap.Bool("obj_model", v.useModel))

	case sdl.SCANCODE_O:
		v.openModelDialog()

	case sdl.SCANCODE_R:
		v.camera.Reset()

	case sdl.SCANCODE_H:
		v.showHelp = !v.showHelp

	case sdl.SCANCODE_F:
		v.showFPS = !v.showFPS

	case sdl.SCANCODE_F12:
		v.takeScreenshot()
	}
}

func (v *Viewer) switchScene(index int) {
	if index < 0 || index >= len(v.scenes) {
		return
	}
	v.current = index
	v.applySceneTitle()
	logger.Info("scene switched", zap.String("scene", v.scenes[index].Name))
}

func (v *Viewer) applySceneTitle() {
	v.window.SetTitle(fmt.Sprintf("Orrery | %s", v.scenes[v.current].Name))
}

// openModelDialog shows a native file picker in a goroutine so the
// main loop keeps running; the result is handled in drainAsyncWork.
func (v *Viewer) openModelDialog() {
	go func() {
		path, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("All Files", "*").
			Title("Open Model").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				fmt.Fprintf(os.Stderr, "file dialog error: %v\n", err)
			}
			return
		}
		select {
		case v.pendingModel <- path:
		default:
		}
	}()
}

// drainAsyncWork handles dialog results and file watcher events on
// the main thread.
func (v *Viewer) drainAsyncWork() {
	select {
	case path := <-v.pendingModel:
		if err := v.loadModel(path); err != nil {
			logger.Error("loading model failed", zap.String("path", path), zap.Error(err))
			return
		}
		v.useModel = true
		v.rebuildScenes()
	default:
	}

	if v.watcher == nil {
		return
	}
	select {
	case path, ok := <-v.watcher.Events:
		if !ok {
			v.watcher = nil
			return
		}
		logger.Info("model changed on disk, reloading", zap.String("path", path))
		v.assets.Invalidate(v.modelPath)
		if err := v.loadModel(v.modelPath); err != nil {
			logger.Error("model reload failed", zap.Error(err))
			return
		}
		if v.useModel {
			v.rebuildScenes()
		}
	case err, ok := <-v.watcher.Errors:
		if ok {
			logger.Warn("model watcher error", zap.Error(err))
		}
	default:
	}
}

// loadModel parses an .obj file, normalizes it to unit size at the
// origin and uploads it, replacing any previous model mesh.
func (v *Viewer) loadModel(path string) error {
	data, err := v.assets.Load(path)
	if err != nil {
		return err
	}

	obj, err := formats.ParseOBJ(data)
	if err != nil {
		return err
	}

	mesh, err := geometry.FromOBJ(obj)
	if err != nil {
		return err
	}
	normalizeMesh(mesh)

	if v.modelMesh != nil {
		v.modelMesh.Destroy()
	}
	v.modelMesh = renderer.UploadMesh(mesh)
	v.modelPath = path

	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	v.watchModel(path)
	return nil
}

// watchModel points the file watcher at the active model path.
func (v *Viewer) watchModel(path string) {
	resolved, err := v.assets.Resolve(path)
	if err != nil {
		return
	}
	if v.watcher != nil {
		if v.watcher.path == filepath.Clean(resolved) {
			return
		}
		v.watcher.Close()
		v.watcher = nil
	}
	w, err := NewModelWatcher(resolved)
	if err != nil {
		logger.Warn("model watcher unavailable", zap.Error(err))
		return
	}
	v.watcher = w
}

// rebuildScenes recreates all scenes with the active sphere mesh,
// preserving the current scene index.
func (v *Viewer) rebuildScenes() {
	sphere := scene.Drawable(v.sphereMesh)
	if v.useModel && v.modelMesh != nil {
		sphere = v.modelMesh
	}
	v.scenes = scene.BuildScenes(scene.Meshes{
		Sphere: sphere,
		Ring:   v.ringMesh,
	})
	if v.current >= len(v.scenes) {
		v.current = 0
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()

	view := v.camera.ViewMatrix()
	proj := v.camera.ProjectionMatrix(v.renderer.Aspect())
	v.sceneRenderer.Render(v.scenes[v.current], view, proj, v.animTime)

	v.drawHUD()
}

func (v *Viewer) takeScreenshot() {
	w, h := v.renderer.Size()
	pixels := v.renderer.ReadPixels()
	path, err := v.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
