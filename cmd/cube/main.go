// Command cube opens a window and draws a wireframe cube under a first-person camera.
//
// W/A/S/D move along the view direction and moving the mouse turns the camera.
// Close the window to exit.
package main

import (
	"embed"
	"log"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine"
	"github.com/Carmen-Shannon/wirecube/engine/camera"
	"github.com/Carmen-Shannon/wirecube/engine/config"
	"github.com/Carmen-Shannon/wirecube/engine/renderer"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
	"github.com/Carmen-Shannon/wirecube/engine/window"
)

//go:embed assets/shaders/*.wgsl
var shaderFS embed.FS

func main() {
	cfg, err := config.Default()
	if err != nil {
		log.Fatalf("[Cube] %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(common.Coalesce(cfg.Window.Title, "Cube")),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithResizable(cfg.Window.Resizable),
		window.WithCursorLocked(true),
	)
	if err != nil {
		log.Fatalf("[Cube] %v", err)
	}
	defer win.Close()

	// ── Renderer ────────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(cfg.PresentMode()),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.ForceSoftware),
	)
	if err != nil {
		log.Fatalf("[Cube] %v", err)
	}

	// ── Shaders + Pipeline ──────────────────────────────────────────────
	vs, err := shader.LoadShader(shaderFS, "cube-vert", shader.ShaderTypeVertex, "assets/shaders/cube-vert.wgsl")
	if err != nil {
		r.Release()
		log.Fatalf("[Cube] %v", err)
	}
	fs, err := shader.LoadShader(shaderFS, "cube-frag", shader.ShaderTypeFragment, "assets/shaders/cube-frag.wgsl")
	if err != nil {
		r.Release()
		log.Fatalf("[Cube] %v", err)
	}
	p := pipeline.NewPipeline("cube",
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithWireframe(),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithFov(cfg.FovRadians()),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithController(camera.NewCameraController(
			camera.WithPosition(common.Vec3(cfg.Camera.Position)),
			camera.WithDirection(common.Vec3(cfg.Camera.Direction)),
			camera.WithSpeed(cfg.Camera.Speed),
		)),
	)

	// ── App ─────────────────────────────────────────────────────────────
	app, err := engine.NewApp(win, r,
		engine.WithPipeline(p),
		engine.WithCamera(cam),
		engine.WithSensitivity(cfg.Camera.Sensitivity),
		engine.WithProfiling(cfg.Debug.Profiling),
	)
	if err != nil {
		log.Fatalf("[Cube] %v", err)
	}
	defer app.Release()

	if err := app.Run(); err != nil {
		log.Printf("[Cube] %v", err)
		app.Release()
		win.Close()
		log.Fatalf("[Cube] frame loop aborted")
	}
}
