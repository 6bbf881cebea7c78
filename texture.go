package gfx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"unsafe"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded image in tightly packed rows, top row first.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Format PixelFormat
}

// TextureOption configures sampler state for LoadTexture.
type TextureOption func(*textureOptions)

type textureOptions struct {
	filter Filter
	wrap   Wrap
}

// WithFilter sets both the minification and magnification filter.
func WithFilter(f Filter) TextureOption {
	return func(o *textureOptions) { o.filter = f }
}

// WithWrap sets the wrap mode on both axes.
func WithWrap(w Wrap) TextureOption {
	return func(o *textureOptions) { o.wrap = w }
}

// DecodeImage reads and decodes path. Only 8-bit RGB and 8-bit RGBA
// sources are accepted; palette, grayscale, 16-bit and CMYK images are
// rejected with ErrUnsupportedFormat.
func DecodeImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		le := &LoadError{Kind: ErrNotFound, Path: path}
		if !errors.Is(err, fs.ErrNotExist) {
			le.Err = err
		}
		return nil, le
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		if err == nil {
			err = fmt.Errorf("not an image container (detected %q)", kind.Extension)
		}
		return nil, &LoadError{Kind: ErrDecode, Path: path, Err: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Kind: ErrDecode, Path: path, Err: fmt.Errorf("%s: %w", kind.MIME.Value, err)}
	}
	format, ok := pixelFormat(cfg.ColorModel)
	if !ok {
		return nil, &LoadError{Kind: ErrUnsupportedFormat, Path: path, Err: fmt.Errorf("%s with %s", kind.MIME.Value, modelName(cfg.ColorModel))}
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Kind: ErrDecode, Path: path, Err: err}
	}

	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	// 8-bit RGBA with premultiplied alpha shares its model with opaque
	// RGB sources, so the pixels decide.
	if format == FormatRGB && !nrgba.Opaque() {
		format = FormatRGBA
	}

	img := &Image{Width: b.Dx(), Height: b.Dy(), Format: format, Pix: nrgba.Pix}
	if format == FormatRGB {
		img.Pix = dropAlpha(nrgba.Pix)
	}
	return img, nil
}

// pixelFormat maps a decoder colour model to an upload format. RGBAModel
// reports RGB; DecodeImage promotes it to RGBA when a pixel is translucent.
func pixelFormat(m color.Model) (PixelFormat, bool) {
	if _, ok := m.(color.Palette); ok {
		return 0, false
	}
	switch m {
	case color.RGBAModel, color.YCbCrModel:
		return FormatRGB, true
	case color.NRGBAModel, color.NYCbCrAModel:
		return FormatRGBA, true
	}
	return 0, false
}

func modelName(m color.Model) string {
	if p, ok := m.(color.Palette); ok {
		return fmt.Sprintf("%d-colour palette", len(p))
	}
	switch m {
	case color.GrayModel:
		return "8-bit grayscale"
	case color.Gray16Model:
		return "16-bit grayscale"
	case color.RGBA64Model, color.NRGBA64Model:
		return "16-bit colour"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "alpha-only"
	}
	return fmt.Sprintf("colour model %T", m)
}

func dropAlpha(pix []byte) []byte {
	out := make([]byte, 0, len(pix)/4*3)
	for i := 0; i+3 < len(pix); i += 4 {
		out = append(out, pix[i], pix[i+1], pix[i+2])
	}
	return out
}

// LoadTexture decodes path and uploads it as a mipmapped 2D texture.
// Sampling defaults to linear filtering with repeat wrapping.
func LoadTexture(gl GL, path string, opts ...TextureOption) (Texture, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return Texture{}, err
	}
	tex, err := UploadTexture(gl, img, opts...)
	if err != nil {
		return Texture{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded texture", "path", path, "format", tex.Format, "width", tex.Width, "height", tex.Height)
	return tex, nil
}

// UploadTexture creates a texture object from decoded pixels, uploads them
// at level 0 and generates the mipmap chain. The texture is left unbound.
func UploadTexture(gl GL, img *Image, opts ...TextureOption) (Texture, error) {
	o := textureOptions{filter: FilterLinear, wrap: WrapRepeat}
	for _, opt := range opts {
		opt(&o)
	}

	if img.Format != FormatRGB && img.Format != FormatRGBA {
		return Texture{}, &LoadError{Kind: ErrUnsupportedFormat, Err: fmt.Errorf("format %s", img.Format)}
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*img.Format.BytesPerPixel() {
		return Texture{}, &LoadError{Kind: ErrDecode, Err: fmt.Errorf("%dx%d %s image with %d bytes",
			img.Width, img.Height, img.Format, len(img.Pix))}
	}

	tex := Texture{Format: img.Format, Width: img.Width, Height: img.Height}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(Texture2D, tex.ID)
	gl.TexParameteri(Texture2D, TextureMinFilter, o.filter.GLEnum())
	gl.TexParameteri(Texture2D, TextureMagFilter, o.filter.GLEnum())
	gl.TexParameteri(Texture2D, TextureWrapS, o.wrap.GLEnum())
	gl.TexParameteri(Texture2D, TextureWrapT, o.wrap.GLEnum())

	// RGB rows are not 4-byte aligned in general.
	if img.Format == FormatRGB {
		gl.PixelStorei(UnpackAlignment, 1)
	}
	gl.TexImage2D(Texture2D, 0, int32(img.Format), int32(img.Width), int32(img.Height), 0,
		uint32(img.Format), UnsignedByte, unsafe.Pointer(&img.Pix[0]))
	if img.Format == FormatRGB {
		gl.PixelStorei(UnpackAlignment, 4)
	}
	gl.GenerateMipmap(Texture2D)
	gl.BindTexture(Texture2D, 0)

	return tex, nil
}

// DeleteTexture releases the texture object. A zero ID is ignored.
func DeleteTexture(gl GL, tex Texture) {
	if tex.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.ID)
}
