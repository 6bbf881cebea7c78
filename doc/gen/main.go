// Command gen renders the demo scene once per topology in a hidden window,
// reads back the framebuffer, and saves JPEG snapshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	cd example && go run ../doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshot defines a single capture.
type snapshot struct {
	name     string // filename without extension
	topology gfx.Topology
	filter   gfx.Filter
}

var snapshots = []snapshot{
	{name: "triangles", topology: gfx.TopologyTriangles, filter: gfx.FilterLinear},
	{name: "triangles-nearest", topology: gfx.TopologyTriangles, filter: gfx.FilterNearest},
	{name: "lines", topology: gfx.TopologyLines, filter: gfx.FilterLinear},
	{name: "points", topology: gfx.TopologyPoints, filter: gfx.FilterLinear},
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	cfg := gfx.DefaultConfig()
	cfg.Window.Title = "snapshot-gen"
	cfg.Window.VSync = false

	window, err := opengl.NewWindow(cfg.Window, true)
	if err != nil {
		return err
	}
	defer window.Destroy()

	gl, err := opengl.Init()
	if err != nil {
		return err
	}
	gfx.EnableAlphaBlending(gl)

	outDir := filepath.Join("..", "doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	// Geometry and program are shared; only the texture changes per filter.
	scene, err := gfx.BuildScene(gl, cfg)
	if err != nil {
		return err
	}
	defer gl.DeleteProgram(uint32(scene.Program))
	gfx.DeleteTexture(gl, scene.Texture)

	for _, s := range snapshots {
		cfg.Render.Topology = s.topology
		if err := capture(gl, window, cfg, scene, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, cfg.Window.Width, cfg.Window.Height)
	}

	fmt.Printf("\nGenerated %d snapshots in %s/\n", len(snapshots), outDir)
	return nil
}

func capture(gl opengl.GL, window *opengl.Window, cfg gfx.Config, scene gfx.Scene, s snapshot, outDir string) error {
	tex, err := gfx.LoadTexture(gl, cfg.Texture.Path, gfx.WithFilter(s.filter), gfx.WithWrap(cfg.Texture.Wrap))
	if err != nil {
		return err
	}
	defer gfx.DeleteTexture(gl, tex)
	scene.Texture = tex

	w, h := window.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	// No presenter: the frame is read back from the back buffer.
	renderer := gfx.NewRenderer(gl, nil, cfg.Render.Options()...)
	if err := renderer.Frame(scene); err != nil {
		return err
	}
	img := gfx.Capture(gl, w, h)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
