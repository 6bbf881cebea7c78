package gfx

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// ReadSource reads a shader source file fully and appends the NUL
// terminator the driver expects.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		le := &LoadError{Kind: ErrNotFound, Path: path}
		if !errors.Is(err, fs.ErrNotExist) {
			le.Err = err
		}
		return "", le
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// CompileShader compiles one shader stage. On failure the shader object is
// deleted and the driver's info log is returned in a *LoadError.
func CompileShader(gl GL, stage ShaderStage, source string) (Shader, error) {
	if !strings.HasSuffix(source, "\x00") {
		return Shader{}, &LoadError{Kind: ErrMissingTerminator, Stage: stage}
	}

	id := gl.CreateShader(uint32(stage))
	gl.ShaderSource(id, source)
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, CompileStatus, &status)
	if status == False {
		log := strings.TrimRight(gl.GetShaderInfoLog(id), "\x00")
		gl.DeleteShader(id)
		return Shader{}, &LoadError{Kind: ErrCompile, Stage: stage, Log: log}
	}

	return Shader{ID: id, Stage: stage}, nil
}

// LinkProgram reads, compiles and links a vertex and fragment shader pair
// into a program.
func LinkProgram(gl GL, vertexPath, fragmentPath string) (Program, error) {
	vertexSource, err := ReadSource(vertexPath)
	if err != nil {
		return 0, err
	}
	fragmentSource, err := ReadSource(fragmentPath)
	if err != nil {
		return 0, err
	}

	program, err := LinkSources(gl, vertexSource, fragmentSource)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && le.Path == "" {
			switch {
			case le.Stage == StageVertex:
				le.Path = vertexPath
			case le.Stage == StageFragment:
				le.Path = fragmentPath
			case le.Kind == ErrLink:
				le.Path = vertexPath + ", " + fragmentPath
			}
		}
		return 0, err
	}
	return program, nil
}

// LinkSources compiles and links in-memory sources. Both stage objects are
// deleted exactly once whether or not linking succeeds.
func LinkSources(gl GL, vertexSource, fragmentSource string) (Program, error) {
	vertex, err := CompileShader(gl, StageVertex, vertexSource)
	if err != nil {
		return 0, err
	}
	fragment, err := CompileShader(gl, StageFragment, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertex.ID)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex.ID)
	gl.AttachShader(program, fragment.ID)
	gl.LinkProgram(program)

	// Stages are flagged for deletion here; the driver frees them once the
	// program no longer references them.
	gl.DeleteShader(vertex.ID)
	gl.DeleteShader(fragment.ID)

	var status int32
	gl.GetProgramiv(program, LinkStatus, &status)
	if status == False {
		log := strings.TrimRight(gl.GetProgramInfoLog(program), "\x00")
		gl.DeleteProgram(program)
		return 0, &LoadError{Kind: ErrLink, Log: log}
	}

	logger.Debug("linked program", "program", program)
	return Program(program), nil
}
