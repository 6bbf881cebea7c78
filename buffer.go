package gfx

import (
	"fmt"
	"unsafe"
)

// VertexArray is a vertex array object plus the vertex count its handle
// alone cannot recover. Every attached buffer must describe exactly Length
// vertices.
type VertexArray struct {
	ID     uint32
	Length int32

	slots map[uint32]AttributeBuffer
}

// AttributeBuffer is a float buffer wired to one attribute slot.
type AttributeBuffer struct {
	ID    uint32
	Slot  uint32
	Width int32
	Len   int // number of float32 values uploaded
}

// Count returns the number of vertices the buffer describes.
func (b AttributeBuffer) Count() int {
	if b.Width == 0 {
		return 0
	}
	return b.Len / int(b.Width)
}

// NewVertexArray generates a vertex array object that will draw length
// vertices.
func NewVertexArray(gl GL, length int32) *VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArray{ID: id, Length: length}
}

// Buffer returns the buffer attached at slot, if any.
func (va *VertexArray) Buffer(slot uint32) (AttributeBuffer, bool) {
	b, ok := va.slots[slot]
	return b, ok
}

// UploadBuffer uploads values as static data into a new buffer attached to
// va at the given attribute slot, width components per vertex, tightly
// packed and not normalized. The buffer lives as long as the context.
func UploadBuffer(gl GL, va *VertexArray, values []float32, width int32, slot uint32) (AttributeBuffer, error) {
	if width < 1 || width > 4 {
		return AttributeBuffer{}, fmt.Errorf("%w: component width %d not in 1..4", ErrInvalidBuffer, width)
	}
	if len(values) == 0 || len(values)%int(width) != 0 {
		return AttributeBuffer{}, fmt.Errorf("%w: %d values is not a whole number of %d-component vertices",
			ErrInvalidBuffer, len(values), width)
	}
	if n := len(values) / int(width); n != int(va.Length) {
		return AttributeBuffer{}, fmt.Errorf("%w: %d vertices at slot %d, vertex array expects %d",
			ErrInvalidBuffer, n, slot, va.Length)
	}
	if _, taken := va.slots[slot]; taken {
		return AttributeBuffer{}, fmt.Errorf("%w: slot %d already has a buffer", ErrInvalidBuffer, slot)
	}

	b := AttributeBuffer{Slot: slot, Width: width, Len: len(values)}

	gl.BindVertexArray(va.ID)
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(ArrayBuffer, b.ID)
	gl.BufferData(ArrayBuffer, len(values)*int(unsafe.Sizeof(values[0])), unsafe.Pointer(&values[0]), StaticDraw)
	gl.EnableVertexAttribArray(slot)
	gl.VertexAttribPointerWithOffset(slot, width, Float, false, 0, 0)

	if va.slots == nil {
		va.slots = make(map[uint32]AttributeBuffer)
	}
	va.slots[slot] = b
	return b, nil
}
