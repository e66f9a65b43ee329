package engine

import (
	"encoding/binary"
	"image"
)

// PixelSink receives packed pixels. Workers call WritePixel concurrently
// for disjoint coordinates.
type PixelSink interface {
	WritePixel(x, y int, packed uint32)
}

// PackFunc packs four 8-bit channels into one pixel value
type PackFunc func(r, g, b, a uint8) uint32

// PackRGBA packs channels so that, stored little-endian, the bytes read
// R, G, B, A in memory
func PackRGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// FrameBuffer is a PixelSink backed by an RGBA image
type FrameBuffer struct {
	img *image.RGBA
}

// NewFrameBuffer allocates a frame of the given size
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// WritePixel stores a packed pixel; coordinates outside the frame are ignored
func (fb *FrameBuffer) WritePixel(x, y int, packed uint32) {
	if !(image.Point{X: x, Y: y}.In(fb.img.Rect)) {
		return
	}
	off := fb.img.PixOffset(x, y)
	binary.LittleEndian.PutUint32(fb.img.Pix[off:off+4], packed)
}

// Pixel returns the packed pixel at x, y
func (fb *FrameBuffer) Pixel(x, y int) uint32 {
	off := fb.img.PixOffset(x, y)
	return binary.LittleEndian.Uint32(fb.img.Pix[off : off+4])
}

// Width returns the frame width in pixels
func (fb *FrameBuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the frame height in pixels
func (fb *FrameBuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Image exposes the underlying image; pixel rows start at the top
func (fb *FrameBuffer) Image() *image.RGBA {
	return fb.img
}
