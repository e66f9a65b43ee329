package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		debug   bool
		info    bool
		warning bool
	}{
		{"debug shows everything", "debug", true, true, true},
		{"info hides debug", "info", false, true, true},
		{"warn hides info", "warn", false, false, true},
		{"unknown falls back to info", "verbose", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tt.level)
			l.EnableColors(false)
			l.SetOutput(&buf)

			l.Debugf("debug %d", 1)
			l.Info("info ", 2)
			l.Warnf("warning %d", 3)

			out := buf.String()
			if got := strings.Contains(out, "debug 1"); got != tt.debug {
				t.Errorf("debug visible=%v, expected %v\n%s", got, tt.debug, out)
			}
			if got := strings.Contains(out, "info 2"); got != tt.info {
				t.Errorf("info visible=%v, expected %v\n%s", got, tt.info, out)
			}
			if got := strings.Contains(out, "warning 3"); got != tt.warning {
				t.Errorf("warning visible=%v, expected %v\n%s", got, tt.warning, out)
			}
		})
	}
}

func TestRecordFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("info")
	l.EnableColors(false)
	l.SetOutput(&buf)

	l.Errorf("frame %d failed", 7)

	out := buf.String()
	for _, want := range []string{"[raycaster]", "[ERROR]", "frame 7 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("Expected no color codes, got %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("error")
	l.SetOutput(&buf)

	l.Info("hidden")
	l.SetLevel("debug")
	l.Debug("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Expected info to be filtered at error level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected debug after SetLevel(debug)")
	}
	if !l.IsDebug() {
		t.Errorf("Expected IsDebug after SetLevel(debug)")
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "raycaster.log")

	l, err := NewFileLogger("info", path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	l.Infof("written to %s", "file")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("Expected record in file, got %q", data)
	}
}
