package engine

import (
	"fmt"
	"io"
	"sync"

	"raycaster/pkg/config"
)

// ASCIIRenderer renders frames as text, one character per cell
type ASCIIRenderer struct {
	config        config.PreviewConfig
	asciiGradient []byte // Characters from dark to light
	width         int
	height        int
	out           io.Writer

	// Блокировка для потокобезопасности
	mutex sync.Mutex
}

// NewASCIIRenderer creates a new ASCII renderer writing to out
func NewASCIIRenderer(cfg config.PreviewConfig, out io.Writer) (*ASCIIRenderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: preview size %dx%d", ErrFrameSize, cfg.Width, cfg.Height)
	}
	if len(cfg.CharSet) == 0 {
		return nil, fmt.Errorf("failed to initialize ASCII renderer: empty charset")
	}

	return &ASCIIRenderer{
		config:        cfg,
		asciiGradient: []byte(cfg.CharSet),
		width:         cfg.Width,
		height:        cfg.Height,
		out:           out,
	}, nil
}

// Render writes the frame as height lines of width characters
func (r *ASCIIRenderer) Render(frame *FrameBuffer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if frame == nil {
		return ErrNoFrame
	}

	if _, err := r.out.Write(r.frameToASCII(frame)); err != nil {
		return fmt.Errorf("failed to write ASCII frame: %v", err)
	}
	return nil
}

// frameToASCII samples the frame on the character grid
func (r *ASCIIRenderer) frameToASCII(frame *FrameBuffer) []byte {
	result := make([]byte, 0, (r.width+1)*r.height)

	frameWidth := frame.Width()
	frameHeight := frame.Height()

	// Фактор масштабирования для подгонки кадра к размеру сетки
	scaleX := float64(frameWidth) / float64(r.width)
	scaleY := float64(frameHeight) / float64(r.height)

	last := len(r.asciiGradient) - 1
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			// Sample positions in frame space, with fractional part
			fx := (float64(x) + 0.5) * scaleX
			fy := (float64(y) + 0.5) * scaleY

			x0, y0 := int(fx), int(fy)
			x1, y1 := min(x0+1, frameWidth-1), min(y0+1, frameHeight-1)
			x0, y0 = min(x0, frameWidth-1), min(y0, frameHeight-1)

			wx := fx - float64(x0)
			wy := fy - float64(y0)
			if wx > 1 {
				wx = 1
			}
			if wy > 1 {
				wy = 1
			}

			// Билинейная интерполяция
			top := luminance(frame, x0, y0)*(1-wx) + luminance(frame, x1, y0)*wx
			bottom := luminance(frame, x0, y1)*(1-wx) + luminance(frame, x1, y1)*wx
			intensity := top*(1-wy) + bottom*wy

			idx := int(intensity*float64(last) + 0.5)
			result = append(result, r.asciiGradient[max(0, min(idx, last))])
		}
		result = append(result, '\n')
	}

	return result
}

// luminance returns the relative luminance of a pixel in [0, 1]
func luminance(frame *FrameBuffer, x, y int) float64 {
	off := frame.img.PixOffset(x, y)
	p := frame.img.Pix[off : off+3]
	return (0.2126*float64(p[0]) + 0.7152*float64(p[1]) + 0.0722*float64(p[2])) / 255
}

// Close releases all resources
func (r *ASCIIRenderer) Close() {}
