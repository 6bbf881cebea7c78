package gfx

import "fmt"

// Presenter shows the frame that was just drawn.
type Presenter interface {
	SwapBuffers()
}

// Scene is the set of resources combined in one draw call.
type Scene struct {
	Program     Program
	VertexArray *VertexArray
	Texture     Texture
	Unit        uint32 // texture unit index, 0 for GL_TEXTURE0
}

// Renderer redraws a scene once per call to Frame. It keeps no per-frame
// state, so repeated calls with the same scene issue identical commands.
type Renderer struct {
	gl        GL
	presenter Presenter
	clear     [4]float32
	topology  Topology
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClearColor sets the colour the framebuffer is cleared to.
func WithClearColor(r, g, b, a float32) RendererOption {
	return func(rr *Renderer) { rr.clear = [4]float32{r, g, b, a} }
}

// WithTopology sets the primitive type used for draws.
func WithTopology(t Topology) RendererOption {
	return func(rr *Renderer) { rr.topology = t }
}

// DefaultClearColor is the gray the demo has always cleared to.
var DefaultClearColor = [4]float32{0.3, 0.3, 0.3, 1.0}

// NewRenderer creates a renderer drawing through gl and presenting through
// p. A nil presenter skips the swap, which is useful for offscreen capture.
func NewRenderer(gl GL, p Presenter, opts ...RendererOption) *Renderer {
	r := &Renderer{
		gl:        gl,
		presenter: p,
		clear:     DefaultClearColor,
		topology:  TopologyTriangles,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Topology returns the primitive type used for draws.
func (r *Renderer) Topology() Topology {
	return r.topology
}

// Frame clears the framebuffer, draws the scene and presents it.
// It must not be called concurrently.
func (r *Renderer) Frame(s Scene) error {
	if s.Program == 0 || s.VertexArray == nil || s.VertexArray.ID == 0 {
		return fmt.Errorf("%w: program %d, vertex array %v", ErrIncompleteScene, s.Program, s.VertexArray)
	}

	gl := r.gl
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(ColorBufferBit | DepthBufferBit)

	gl.UseProgram(uint32(s.Program))

	gl.ActiveTexture(Texture0 + s.Unit)
	gl.BindTexture(Texture2D, s.Texture.ID)

	gl.BindVertexArray(s.VertexArray.ID)
	gl.DrawArrays(r.topology.GLEnum(), 0, s.VertexArray.Length)

	if r.presenter != nil {
		r.presenter.SwapBuffers()
	}
	return nil
}
