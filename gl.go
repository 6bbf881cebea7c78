package gfx

import "unsafe"

// OpenGL enum values used by the core. They mirror the values in
// github.com/go-gl/gl so the core never imports the binding directly.
const (
	False = 0
	True  = 1

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	ArrayBuffer = 0x8892
	StaticDraw  = 0x88E4
	Float       = 0x1406

	Texture2D        = 0x0DE1
	Texture0         = 0x84C0
	TextureMinFilter = 0x2801
	TextureMagFilter = 0x2800
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803
	Nearest          = 0x2600
	Linear           = 0x2601
	Repeat           = 0x2901
	ClampToEdge      = 0x812F
	MirroredRepeat   = 0x8370
	UnpackAlignment  = 0x0CF5

	RGB          = 0x1907
	RGBA         = 0x1908
	UnsignedByte = 0x1401

	ColorBufferBit = 0x00004000
	DepthBufferBit = 0x00000100

	Points    = 0x0000
	Lines     = 0x0001
	Triangles = 0x0004

	Blend            = 0x0BE2
	SrcAlpha         = 0x0302
	OneMinusSrcAlpha = 0x0303

	Vendor                 = 0x1F00
	RendererString         = 0x1F01
	Version                = 0x1F02
	ShadingLanguageVersion = 0x8B8C
)

// GL is the graphics context every component draws through. It lists
// only the entry points the package uses. All methods act on the context
// current on the calling thread, so a GL must be used from one goroutine
// that has the OS thread locked.
type GL interface {
	// Shaders and programs
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// Vertex arrays and buffers
	GenVertexArrays(n int32, arrays *uint32)
	BindVertexArray(array uint32)
	GenBuffers(n int32, buffers *uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointerWithOffset(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	// Textures
	GenTextures(n int32, textures *uint32)
	DeleteTextures(n int32, textures *uint32)
	BindTexture(target, texture uint32)
	ActiveTexture(texture uint32)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)
	TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	GenerateMipmap(target uint32)

	// Frame state
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)
	Viewport(x, y, width, height int32)
	DrawArrays(mode uint32, first, count int32)
	ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer)

	GetString(name uint32) string
}

// DriverInfo identifies the driver behind a context.
type DriverInfo struct {
	Version                string
	Vendor                 string
	Renderer               string
	ShadingLanguageVersion string
}

// Info queries the driver strings of the current context.
func Info(gl GL) DriverInfo {
	return DriverInfo{
		Version:                gl.GetString(Version),
		Vendor:                 gl.GetString(Vendor),
		Renderer:               gl.GetString(RendererString),
		ShadingLanguageVersion: gl.GetString(ShadingLanguageVersion),
	}
}

// EnableAlphaBlending turns on standard straight-alpha blending.
func EnableAlphaBlending(gl GL) {
	gl.Enable(Blend)
	gl.BlendFunc(SrcAlpha, OneMinusSrcAlpha)
}
