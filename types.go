package gfx

import (
	"fmt"
	"strings"
)

// ShaderStage is the kind of a separately compiled shader object.
type ShaderStage uint32

const (
	StageVertex   ShaderStage = VertexShader
	StageFragment ShaderStage = FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderStage(%#x)", uint32(s))
	}
}

// Shader is a compiled shader stage. It is owned by the linker and
// deleted right after linking.
type Shader struct {
	ID    uint32
	Stage ShaderStage
}

// Program is a linked shader program.
type Program uint32

// PixelFormat is the layout of decoded texture bytes. Only 8 bits per
// channel are supported.
type PixelFormat uint32

const (
	FormatRGB  PixelFormat = RGB
	FormatRGBA PixelFormat = RGBA
)

// BytesPerPixel returns the tightly packed pixel size.
func (f PixelFormat) BytesPerPixel() int {
	if f == FormatRGB {
		return 3
	}
	return 4
}

func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "RGB8"
	case FormatRGBA:
		return "RGBA8"
	default:
		return fmt.Sprintf("PixelFormat(%#x)", uint32(f))
	}
}

// Texture is an uploaded 2D texture.
type Texture struct {
	ID     uint32
	Format PixelFormat
	Width  int
	Height int
}

// Filter selects texture sampling for both minification and magnification.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Wrap selects the texture wrap mode on both axes.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClamp
	WrapMirror
)

// Topology selects how DrawArrays assembles vertices.
type Topology int

const (
	TopologyTriangles Topology = iota
	TopologyLines
	TopologyPoints
)

var (
	filterNames   = []string{"linear", "nearest"}
	wrapNames     = []string{"repeat", "clamp", "mirror"}
	topologyNames = []string{"triangles", "lines", "points"}
)

func enumName(names []string, v int, kind string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func parseEnum(names []string, text []byte, kind string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

// GLEnum returns the sampler value for the filter.
func (f Filter) GLEnum() int32 {
	if f == FilterNearest {
		return Nearest
	}
	return Linear
}

func (f Filter) String() string { return enumName(filterNames, int(f), "Filter") }

// MarshalText implements encoding.TextMarshaler.
func (f Filter) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Filter) UnmarshalText(text []byte) error {
	v, err := parseEnum(filterNames, text, "filter")
	if err != nil {
		return err
	}
	*f = Filter(v)
	return nil
}

// GLEnum returns the wrap parameter value.
func (w Wrap) GLEnum() int32 {
	switch w {
	case WrapClamp:
		return ClampToEdge
	case WrapMirror:
		return MirroredRepeat
	default:
		return Repeat
	}
}

func (w Wrap) String() string { return enumName(wrapNames, int(w), "Wrap") }

// MarshalText implements encoding.TextMarshaler.
func (w Wrap) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wrap) UnmarshalText(text []byte) error {
	v, err := parseEnum(wrapNames, text, "wrap")
	if err != nil {
		return err
	}
	*w = Wrap(v)
	return nil
}

// GLEnum returns the primitive mode passed to DrawArrays.
func (t Topology) GLEnum() uint32 {
	switch t {
	case TopologyLines:
		return Lines
	case TopologyPoints:
		return Points
	default:
		return Triangles
	}
}

func (t Topology) String() string { return enumName(topologyNames, int(t), "Topology") }

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	v, err := parseEnum(topologyNames, text, "topology")
	if err != nil {
		return err
	}
	*t = Topology(v)
	return nil
}
