package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"raycaster/pkg/engine"
)

// OpenGLRenderer presents frames by uploading them to a texture attached
// to a read framebuffer and blitting it to the window
type OpenGLRenderer struct {
	window  *glfw.Window
	texture uint32
	fbo     uint32
	width   int
	height  int
}

// NewOpenGLRenderer creates a renderer for frames of the given size. The
// window's context must be current.
func NewOpenGLRenderer(window *glfw.Window, width, height int) (*OpenGLRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	r := &OpenGLRenderer{window: window, width: width, height: height}
	if err := r.setupFramebuffer(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// setupFramebuffer creates the frame texture and its read framebuffer
func (r *OpenGLRenderer) setupFramebuffer() error {
	gl.GenTextures(1, &r.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(r.width), int32(r.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.texture, 0)

	status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer not complete: 0x%x", status)
	}
	return nil
}

// Render uploads the frame and copies it to the window
func (r *OpenGLRenderer) Render(frame *engine.FrameBuffer) error {
	if frame == nil {
		return engine.ErrNoFrame
	}
	if frame.Width() != r.width || frame.Height() != r.height {
		return fmt.Errorf("%w: %dx%d frame for a %dx%d texture",
			engine.ErrFrameSize, frame.Width(), frame.Height(), r.width, r.height)
	}

	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Image().Pix))

	// Frame rows start at the top, GL rows at the bottom: flip while blitting
	fbWidth, fbHeight := r.window.GetFramebufferSize()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		0, 0, int32(r.width), int32(r.height),
		0, int32(fbHeight), int32(fbWidth), 0,
		gl.COLOR_BUFFER_BIT, gl.LINEAR,
	)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return nil
}

// Close releases all GL resources
func (r *OpenGLRenderer) Close() {
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
		r.fbo = 0
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
		r.texture = 0
	}
}
