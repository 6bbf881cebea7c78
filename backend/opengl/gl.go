// Package opengl binds the gfx package to an OpenGL 4.1 core context
// through go-gl, and to a GLFW window.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gfx"
)

// GL implements gfx.GL with the go-gl 4.1 core bindings. The zero value is
// ready once Init has succeeded on the thread owning the context.
type GL struct{}

var _ gfx.GL = GL{}

// Init loads the OpenGL function pointers for the current context.
func Init() (GL, error) {
	if err := gl.Init(); err != nil {
		return GL{}, fmt.Errorf("gl init: %w", err)
	}
	return GL{}, nil
}

func (GL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

// ShaderSource requires a NUL-terminated source; gl.Strs panics otherwise.
func (GL) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (GL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (GL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (GL) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (GL) CreateProgram() uint32 { return gl.CreateProgram() }

func (GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (GL) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (GL) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (GL) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GL) UseProgram(program uint32) { gl.UseProgram(program) }

func (GL) GenVertexArrays(n int32, arrays *uint32) { gl.GenVertexArrays(n, arrays) }

func (GL) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (GL) GenBuffers(n int32, buffers *uint32) { gl.GenBuffers(n, buffers) }

func (GL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (GL) VertexAttribPointerWithOffset(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (GL) GenTextures(n int32, textures *uint32) { gl.GenTextures(n, textures) }

func (GL) DeleteTextures(n int32, textures *uint32) { gl.DeleteTextures(n, textures) }

func (GL) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (GL) ActiveTexture(texture uint32) { gl.ActiveTexture(texture) }

func (GL) TexParameteri(target, pname uint32, param int32) { gl.TexParameteri(target, pname, param) }

func (GL) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (GL) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalformat, width, height, border, format, xtype, pixels)
}

func (GL) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (GL) Clear(mask uint32) { gl.Clear(mask) }

func (GL) Enable(capability uint32) { gl.Enable(capability) }

func (GL) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }

func (GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (GL) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (GL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.ReadPixels(x, y, width, height, format, xtype, pixels)
}

func (GL) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
