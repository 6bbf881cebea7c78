package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx"
)

// Window wraps a GLFW window with a current OpenGL 4.1 core context.
// It implements gfx.Presenter.
type Window struct {
	window *glfw.Window

	// OnMouseRelease, when set, is called for every released mouse button
	// with the cursor position.
	OnMouseRelease func(button glfw.MouseButton, x, y float64)
}

var _ gfx.Presenter = (*Window)(nil)

// NewWindow creates a window, makes its context current and installs the
// event callbacks. glfw.Init must have been called on the main thread.
// A hidden window is useful for offscreen capture.
func NewWindow(cfg gfx.WindowConfig, hidden bool) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: window}
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	window.SetMouseButtonCallback(w.mouseButtonCallback)
	window.SetCloseCallback(w.closeCallback)

	return w, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// PollEvents processes pending events and dispatches the callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Destroy releases the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

// The viewport is deliberately left at its initial size; resizes are only
// reported.
func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gfx.Logger().Debug("framebuffer resized", "width", width, "height", height)
}

func (w *Window) mouseButtonCallback(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Release {
		return
	}
	x, y := win.GetCursorPos()
	gfx.Logger().Debug("mouse released", "button", int(button), "x", x, "y", y)
	if w.OnMouseRelease != nil {
		w.OnMouseRelease(button, x, y)
	}
}

func (w *Window) closeCallback(_ *glfw.Window) {
	gfx.Logger().Debug("close requested")
}
