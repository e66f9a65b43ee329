package util

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-3, 0},
		{128.5, 128.5},
		{300, 255},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in, 0, 255); got != tt.want {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(4)
	if c.FPS() != 0 {
		t.Errorf("Expected 0 FPS before any frame")
	}

	c.Add(100 * time.Millisecond)
	c.Add(100 * time.Millisecond)
	if got := c.FPS(); math.Abs(got-10) > 1e-9 {
		t.Errorf("Expected 10 FPS, got %v", got)
	}

	// Older samples fall out of the window
	for i := 0; i < 4; i++ {
		c.Add(20 * time.Millisecond)
	}
	if got := c.FPS(); math.Abs(got-50) > 1e-9 {
		t.Errorf("Expected 50 FPS, got %v", got)
	}
}

func TestFrameInterval(t *testing.T) {
	if got := FrameInterval(0); got != 0 {
		t.Errorf("Expected no limit, got %v", got)
	}
	if got := FrameInterval(40); got != 25*time.Millisecond {
		t.Errorf("Expected 25ms, got %v", got)
	}
}

func TestCreateDirIfNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := CreateDirIfNotExist(dir); err != nil {
		t.Fatalf("CreateDirIfNotExist: %v", err)
	}
	if !DirExists(dir) {
		t.Errorf("Expected %s to exist", dir)
	}
	if FileExists(dir) {
		t.Errorf("Expected a directory not to count as a file")
	}
}
