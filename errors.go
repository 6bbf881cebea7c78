package gfx

import (
	"errors"
	"fmt"
)

// Error kinds. Every *LoadError unwraps to exactly one of these, so callers
// can branch with errors.Is.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrCompile           = errors.New("shader compilation failed")
	ErrLink              = errors.New("program linking failed")
	ErrDecode            = errors.New("image decode failed")
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	ErrMissingTerminator = errors.New("shader source is not NUL-terminated")
)

// Errors that are not tied to a resource on disk.
var (
	ErrInvalidBuffer   = errors.New("invalid attribute buffer")
	ErrIncompleteScene = errors.New("incomplete scene")
)

// LoadError describes a failure while turning a file or source text into a
// GPU resource.
type LoadError struct {
	Kind  error       // one of the Err* sentinels above
	Path  string      // offending file, both shader files for link failures
	Stage ShaderStage // set for compile failures
	Log   string      // driver info log, verbatim
	Err   error       // underlying cause, if any
}

func (e *LoadError) Error() string {
	msg := e.Kind.Error()
	if e.Stage != 0 {
		msg = e.Stage.String() + " " + msg
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Log != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Log)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
