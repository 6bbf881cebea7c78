// Example opens a window and draws the textured demo triangles every frame.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # asset paths are relative to the working directory
//
// Settings are read from warnengine.toml in the working directory when it
// exists; see gfx.DefaultConfig for the defaults.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/backend/opengl"
)

const configFile = "warnengine.toml"

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := gfx.LoadConfig(configFile)
	if err != nil {
		return err
	}
	gfx.SetVerbose(cfg.Debug)
	log := gfx.Logger()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(cfg.Window, false)
	if err != nil {
		return err
	}
	defer window.Destroy()

	gl, err := opengl.Init()
	if err != nil {
		return err
	}

	info := gfx.Info(gl)
	log.Info("opengl context", "version", info.Version, "vendor", info.Vendor, "renderer", info.Renderer)

	gfx.EnableAlphaBlending(gl)

	scene, err := gfx.BuildScene(gl, cfg)
	if err != nil {
		return err
	}

	var watcher *gfx.ShaderWatcher
	if cfg.Shaders.Watch {
		watcher, err = gfx.NewShaderWatcher(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	renderer := gfx.NewRenderer(gl, window, cfg.Render.Options()...)

	for !window.ShouldClose() {
		window.PollEvents()

		if watcher != nil && watcher.Changed() {
			scene.Program = gfx.Reload(gl, scene.Program, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		}

		if err := renderer.Frame(scene); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	return nil
}
