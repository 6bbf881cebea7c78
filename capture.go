package gfx

import (
	"image"
	"unsafe"
)

// Capture reads back the current framebuffer as an image, flipped so the
// top row comes first.
func Capture(gl GL, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	gl.ReadPixels(0, 0, int32(width), int32(height), RGBA, UnsignedByte, unsafe.Pointer(&img.Pix[0]))

	// OpenGL's origin is bottom-left.
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
	return img
}
