package engine

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"raycaster/internal/util"
)

// SaveScreenshot writes the frame as a PNG file, creating the parent
// directory when needed
func SaveScreenshot(frame *FrameBuffer, path string) error {
	if frame == nil {
		return ErrNoFrame
	}

	if err := util.CreateDirIfNotExist(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create screenshot: %v", err)
	}

	if err := png.Encode(file, frame.Image()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode screenshot: %v", err)
	}
	return file.Close()
}
