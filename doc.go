/*
Package gfx wraps the handful of OpenGL resources a small textured-mesh demo
needs: shader programs, vertex arrays with attribute buffers, textures, and
a per-frame renderer.

Every call goes through an explicit GL value rather than package-level
bindings, so ordering is visible at the call site and the whole pipeline
can be exercised against a recording fake. The backend/opengl package
supplies the real implementation on top of go-gl and GLFW.

# Quick Start

	gl, _ := opengl.Init()

	program, err := gfx.LinkProgram(gl, "assets/basic.vs.glsl", "assets/basic.fs.glsl")
	if err != nil {
	    return err
	}

	va := gfx.NewVertexArray(gl, 3)
	gfx.UploadBuffer(gl, va, positions, 3, gfx.SlotPosition)
	gfx.UploadBuffer(gl, va, uvs, 2, gfx.SlotUV)

	tex, err := gfx.LoadTexture(gl, "assets/oui.png")
	if err != nil {
	    return err
	}

	renderer := gfx.NewRenderer(gl, window)
	for !window.ShouldClose() {
	    window.PollEvents()
	    renderer.Frame(gfx.Scene{Program: program, VertexArray: va, Texture: tex})
	}

# Errors

Nothing in the package exits the process. Failures are returned as
*LoadError values whose Kind is one of ErrNotFound, ErrCompile, ErrLink,
ErrDecode, ErrUnsupportedFormat or ErrMissingTerminator, and callers match
them with errors.Is. The example program treats every setup error as fatal.

# Textures

Only 8-bit RGB and 8-bit RGBA images are accepted. PNG, JPEG and GIF are
decoded with the standard library; BMP, TIFF and WebP through
golang.org/x/image. Palette, grayscale, 16-bit and CMYK images are rejected
with ErrUnsupportedFormat rather than converted.

Sampling defaults to linear filtering and repeat wrapping on both axes:

	gfx.LoadTexture(gl, path, gfx.WithFilter(gfx.FilterNearest), gfx.WithWrap(gfx.WrapClamp))

# Limitations

Window resizes are reported by the backend but the viewport is never
adjusted; the scene keeps rendering at its initial size. Buffers and
textures are never freed explicitly and live as long as the context.
*/
package gfx
