package gfx_test

import (
	"fmt"
	"unsafe"

	"github.com/go-theft-auto/gfx"
)

// call is one recorded GL entry point invocation.
type call struct {
	name string
	args []any
}

func (c call) String() string { return fmt.Sprintf("%s%v", c.name, c.args) }

// fakeGL records every call and hands out sequential object names.
// compileFail and linkFail make the driver report failure.
type fakeGL struct {
	calls []call
	next  uint32

	compileFail map[uint32]bool // by shader stage
	linkFail    bool
	infoLog     string

	stages   map[uint32]uint32 // shader id -> stage
	sources  map[uint32]string
	deleted  map[uint32]int // shader id -> DeleteShader count
	texImage []byte         // pixels of the last TexImage2D

	strings map[uint32]string
	pixels  []byte // returned by ReadPixels
}

var _ gfx.GL = (*fakeGL)(nil)

func newFakeGL() *fakeGL {
	return &fakeGL{
		compileFail: make(map[uint32]bool),
		stages:      make(map[uint32]uint32),
		sources:     make(map[uint32]string),
		deleted:     make(map[uint32]int),
		strings:     make(map[uint32]string),
	}
}

func (f *fakeGL) record(name string, args ...any) {
	f.calls = append(f.calls, call{name: name, args: args})
}

func (f *fakeGL) gen() uint32 {
	f.next++
	return f.next
}

// count returns how many times name was called.
func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// named returns the recorded calls to name, in order.
func (f *fakeGL) named(name string) []call {
	var out []call
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// names returns the sequence of call names.
func (f *fakeGL) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeGL) reset() { f.calls = nil }

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	id := f.gen()
	f.stages[id] = xtype
	f.record("CreateShader", xtype)
	return id
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
	f.record("ShaderSource", shader)
}

func (f *fakeGL) CompileShader(shader uint32) { f.record("CompileShader", shader) }

func (f *fakeGL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	f.record("GetShaderiv", shader, pname)
	switch pname {
	case gfx.CompileStatus:
		*params = gfx.True
		if f.compileFail[f.stages[shader]] {
			*params = gfx.False
		}
	case gfx.InfoLogLength:
		*params = int32(len(f.infoLog))
	}
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string {
	f.record("GetShaderInfoLog", shader)
	return f.infoLog + "\x00"
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.deleted[shader]++
	f.record("DeleteShader", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	id := f.gen()
	f.record("CreateProgram")
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) { f.record("AttachShader", program, shader) }
func (f *fakeGL) LinkProgram(program uint32)          { f.record("LinkProgram", program) }

func (f *fakeGL) GetProgramiv(program uint32, pname uint32, params *int32) {
	f.record("GetProgramiv", program, pname)
	if pname == gfx.LinkStatus {
		*params = gfx.True
		if f.linkFail {
			*params = gfx.False
		}
	}
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string {
	f.record("GetProgramInfoLog", program)
	return f.infoLog
}

func (f *fakeGL) DeleteProgram(program uint32) { f.record("DeleteProgram", program) }
func (f *fakeGL) UseProgram(program uint32)    { f.record("UseProgram", program) }

func (f *fakeGL) GenVertexArrays(n int32, arrays *uint32) {
	*arrays = f.gen()
	f.record("GenVertexArrays", n)
}

func (f *fakeGL) BindVertexArray(array uint32) { f.record("BindVertexArray", array) }

func (f *fakeGL) GenBuffers(n int32, buffers *uint32) {
	*buffers = f.gen()
	f.record("GenBuffers", n)
}

func (f *fakeGL) BindBuffer(target, buffer uint32) { f.record("BindBuffer", target, buffer) }

func (f *fakeGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	f.record("BufferData", target, size, usage)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) { f.record("EnableVertexAttribArray", index) }

func (f *fakeGL) VertexAttribPointerWithOffset(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.record("VertexAttribPointerWithOffset", index, size, xtype, normalized, stride, offset)
}

func (f *fakeGL) GenTextures(n int32, textures *uint32) {
	*textures = f.gen()
	f.record("GenTextures", n)
}

func (f *fakeGL) DeleteTextures(n int32, textures *uint32) {
	f.record("DeleteTextures", n, *textures)
}

func (f *fakeGL) BindTexture(target, texture uint32) { f.record("BindTexture", target, texture) }
func (f *fakeGL) ActiveTexture(texture uint32)       { f.record("ActiveTexture", texture) }

func (f *fakeGL) TexParameteri(target, pname uint32, param int32) {
	f.record("TexParameteri", target, pname, param)
}

func (f *fakeGL) PixelStorei(pname uint32, param int32) { f.record("PixelStorei", pname, param) }

func (f *fakeGL) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	n := int(width) * int(height) * 4
	if format == gfx.RGB {
		n = int(width) * int(height) * 3
	}
	f.texImage = append([]byte(nil), unsafe.Slice((*byte)(pixels), n)...)
	f.record("TexImage2D", target, level, internalformat, width, height, format, xtype)
}

func (f *fakeGL) GenerateMipmap(target uint32) { f.record("GenerateMipmap", target) }

func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }
func (f *fakeGL) Clear(mask uint32)             { f.record("Clear", mask) }
func (f *fakeGL) Enable(capability uint32)      { f.record("Enable", capability) }

func (f *fakeGL) BlendFunc(sfactor, dfactor uint32) { f.record("BlendFunc", sfactor, dfactor) }

func (f *fakeGL) Viewport(x, y, width, height int32) { f.record("Viewport", x, y, width, height) }

func (f *fakeGL) DrawArrays(mode uint32, first, count int32) {
	f.record("DrawArrays", mode, first, count)
}

func (f *fakeGL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	dst := unsafe.Slice((*byte)(pixels), int(width)*int(height)*4)
	copy(dst, f.pixels)
	f.record("ReadPixels", x, y, width, height)
}

func (f *fakeGL) GetString(name uint32) string {
	f.record("GetString", name)
	return f.strings[name]
}

// fakePresenter counts swaps.
type fakePresenter struct {
	swaps int
}

func (p *fakePresenter) SwapBuffers() { p.swaps++ }
