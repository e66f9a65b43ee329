package util

import (
	"fmt"
	"os"
	"time"
)

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

// CreateDirIfNotExist creates a directory if it doesn't exist
func CreateDirIfNotExist(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if !DirExists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %v", err)
		}
	}
	return nil
}

// FrameInterval returns the time budget of one frame at the given rate.
// A non-positive rate means no limit.
func FrameInterval(frameRate int) time.Duration {
	if frameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(frameRate)
}

// FPSCounter keeps a rolling average over the most recent frame times
type FPSCounter struct {
	samples []time.Duration
	next    int
	filled  bool
	total   time.Duration
}

// NewFPSCounter creates a counter averaging over window frames
func NewFPSCounter(window int) *FPSCounter {
	if window < 1 {
		window = 1
	}
	return &FPSCounter{samples: make([]time.Duration, window)}
}

// Add records the duration of one frame
func (c *FPSCounter) Add(frame time.Duration) {
	c.total -= c.samples[c.next]
	c.samples[c.next] = frame
	c.total += frame

	c.next++
	if c.next == len(c.samples) {
		c.next = 0
		c.filled = true
	}
}

// FPS returns the average frames per second over the window
func (c *FPSCounter) FPS() float64 {
	n := c.next
	if c.filled {
		n = len(c.samples)
	}
	if n == 0 || c.total <= 0 {
		return 0
	}
	return float64(n) / c.total.Seconds()
}
