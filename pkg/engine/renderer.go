package engine

// Renderer presents finished frames to some output
type Renderer interface {
	// Render presents one frame
	Render(frame *FrameBuffer) error

	// Close releases resources
	Close()
}
