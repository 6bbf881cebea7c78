package gfx_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx"
)

const (
	vertexSource   = "#version 410 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	fragmentSource = "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

// writeShaders writes a vertex/fragment pair into a temp dir and returns
// their paths.
func writeShaders(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vs := filepath.Join(dir, "basic.vs.glsl")
	fs := filepath.Join(dir, "basic.fs.glsl")
	require.NoError(t, os.WriteFile(vs, []byte(vertexSource), 0o644))
	require.NoError(t, os.WriteFile(fs, []byte(fragmentSource), 0o644))
	return vs, fs
}

func TestReadSourceAppendsTerminator(t *testing.T) {
	vs, _ := writeShaders(t)

	src, err := gfx.ReadSource(vs)
	require.NoError(t, err)
	assert.Equal(t, vertexSource+"\x00", src)
}

func TestReadSourceKeepsExistingTerminator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminated.glsl")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}\x00"), 0o644))

	src, err := gfx.ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\x00", src)
}

func TestReadSourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.glsl")

	_, err := gfx.ReadSource(path)
	require.ErrorIs(t, err, gfx.ErrNotFound)
	assert.Contains(t, err.Error(), path)

	var le *gfx.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Path)
}

func TestCompileShader(t *testing.T) {
	gl := newFakeGL()

	sh, err := gfx.CompileShader(gl, gfx.StageVertex, vertexSource+"\x00")
	require.NoError(t, err)
	assert.Equal(t, gfx.StageVertex, sh.Stage)
	assert.NotZero(t, sh.ID)
	assert.Equal(t, vertexSource+"\x00", gl.sources[sh.ID])
	assert.Equal(t, []string{"CreateShader", "ShaderSource", "CompileShader", "GetShaderiv"}, gl.names())
	assert.Zero(t, gl.deleted[sh.ID])
}

func TestCompileShaderRejectsMissingTerminator(t *testing.T) {
	gl := newFakeGL()

	_, err := gfx.CompileShader(gl, gfx.StageFragment, fragmentSource)
	require.ErrorIs(t, err, gfx.ErrMissingTerminator)
	assert.Contains(t, err.Error(), "fragment")
	assert.Empty(t, gl.calls, "no driver call may be made for an unterminated source")
}

func TestCompileShaderFailureReturnsLog(t *testing.T) {
	gl := newFakeGL()
	gl.compileFail[gfx.FragmentShader] = true
	gl.infoLog = "0:3(12): error: syntax error, unexpected '}'"

	_, err := gfx.CompileShader(gl, gfx.StageFragment, fragmentSource+"\x00")
	require.ErrorIs(t, err, gfx.ErrCompile)

	var le *gfx.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, gl.infoLog, le.Log)
	assert.Equal(t, gfx.StageFragment, le.Stage)
	assert.Contains(t, err.Error(), gl.infoLog)

	// The failed stage object is released.
	assert.Equal(t, 1, gl.count("DeleteShader"))
}

func TestLinkProgramDeletesStagesOnce(t *testing.T) {
	vs, fs := writeShaders(t)
	gl := newFakeGL()

	program, err := gfx.LinkProgram(gl, vs, fs)
	require.NoError(t, err)
	assert.NotZero(t, program)

	require.Len(t, gl.stages, 2)
	for id := range gl.stages {
		assert.Equal(t, 1, gl.deleted[id], "shader %d", id)
	}
	assert.Equal(t, 2, gl.count("AttachShader"))
	assert.Equal(t, 1, gl.count("LinkProgram"))
	assert.Zero(t, gl.count("DeleteProgram"))
}

func TestLinkProgramFailure(t *testing.T) {
	vs, fs := writeShaders(t)
	gl := newFakeGL()
	gl.linkFail = true
	gl.infoLog = "error: vertex output 'uv' not consumed by fragment shader"

	program, err := gfx.LinkProgram(gl, vs, fs)
	require.ErrorIs(t, err, gfx.ErrLink)
	assert.Zero(t, program)
	assert.Contains(t, err.Error(), gl.infoLog)
	assert.Contains(t, err.Error(), vs+", "+fs, "a link failure names both stages")

	for id := range gl.stages {
		assert.Equal(t, 1, gl.deleted[id], "shader %d", id)
	}
	assert.Equal(t, 1, gl.count("DeleteProgram"))
}

func TestLinkProgramFragmentCompileFailure(t *testing.T) {
	vs, fs := writeShaders(t)
	gl := newFakeGL()
	gl.compileFail[gfx.FragmentShader] = true
	gl.infoLog = "bad fragment"

	_, err := gfx.LinkProgram(gl, vs, fs)
	require.ErrorIs(t, err, gfx.ErrCompile)
	assert.Contains(t, err.Error(), fs)

	require.Len(t, gl.stages, 2)
	for id := range gl.stages {
		assert.Equal(t, 1, gl.deleted[id], "shader %d", id)
	}
	assert.Zero(t, gl.count("CreateProgram"))
}

func TestLinkProgramMissingSource(t *testing.T) {
	vs, _ := writeShaders(t)
	missing := filepath.Join(t.TempDir(), "nope.fs.glsl")
	gl := newFakeGL()

	_, err := gfx.LinkProgram(gl, vs, missing)
	require.ErrorIs(t, err, gfx.ErrNotFound)
	assert.Contains(t, err.Error(), missing)
	assert.Empty(t, gl.calls)
}
