package gfx

import "fmt"

// Demo geometry: two triangles forming a quad, positions at slot 0 and
// texture coordinates at slot 1.
var (
	DemoPositions = []float32{
		0, -1, 0,
		0, 0, 0,
		1, 0, 0,
		1, -1, 0,
		1, 0, 0,
		0, -1, 0,
	}
	DemoUVs = []float32{
		0, 0,
		0, -1,
		1, -1,
		1, 0,
		1, -1,
		0, 0,
	}
)

// Attribute slots read by the demo vertex shader.
const (
	SlotPosition = 0
	SlotUV       = 1
)

// BuildScene runs the startup pipeline: link the program, upload the demo
// geometry and load the texture. Any failure is returned; nothing is
// partially used.
func BuildScene(gl GL, cfg Config) (Scene, error) {
	program, err := LinkProgram(gl, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return Scene{}, fmt.Errorf("create program: %w", err)
	}

	va := NewVertexArray(gl, int32(len(DemoPositions)/3))
	if _, err := UploadBuffer(gl, va, DemoPositions, 3, SlotPosition); err != nil {
		return Scene{}, fmt.Errorf("upload positions: %w", err)
	}
	if _, err := UploadBuffer(gl, va, DemoUVs, 2, SlotUV); err != nil {
		return Scene{}, fmt.Errorf("upload uvs: %w", err)
	}

	tex, err := LoadTexture(gl, cfg.Texture.Path, cfg.Texture.Options()...)
	if err != nil {
		return Scene{}, fmt.Errorf("load texture: %w", err)
	}

	return Scene{Program: program, VertexArray: va, Texture: tex}, nil
}
