package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
)

// Module is the name every record is tagged with
const Module = "raycaster"

// Console and file formats
var (
	colorFormat = logging.MustStringFormatter(
		`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.5s}] %{shortfile}:%{color:reset} %{message}`,
	)
	plainFormat = logging.MustStringFormatter(
		`[%{time:2006/01/02 15:04:05.000}] [%{module}] [%{level:.5s}] %{shortfile}: %{message}`,
	)
)

// Logger handles logging functionalities
type Logger struct {
	log       *logging.Logger
	backend   logging.LeveledBackend
	level     logging.Level
	out       io.Writer
	file      *os.File
	useColors bool
}

// parseLevel maps a level name to a go-logging level
func parseLevel(levelStr string) logging.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return logging.DEBUG
	case "info":
		return logging.INFO
	case "warn", "warning":
		return logging.WARNING
	case "error":
		return logging.ERROR
	case "fatal":
		return logging.CRITICAL
	default:
		return logging.INFO
	}
}

// isTerminal reports whether f is attached to a character device
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// NewLogger creates a new console logger with the specified log level
func NewLogger(levelStr string) *Logger {
	l := &Logger{
		log:       logging.MustGetLogger(Module),
		level:     parseLevel(levelStr),
		out:       os.Stdout,
		useColors: isTerminal(os.Stdout),
	}
	// Records are emitted from our wrappers, one frame above the caller
	l.log.ExtraCalldepth = 1
	l.rebuild()
	return l
}

// openLogFile creates the log directory and opens the file for appending
func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}
	return file, nil
}

// NewFileLogger creates a new logger that writes to a file
func NewFileLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := NewLogger(levelStr)
	l.out = nil
	l.file = file
	l.rebuild()
	return l, nil
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := NewLogger(levelStr)
	l.file = file
	l.rebuild()
	return l, nil
}

// rebuild assembles the backend chain from the current sinks
func (l *Logger) rebuild() {
	var backends []logging.Backend

	if l.out != nil {
		format := plainFormat
		if l.useColors {
			format = colorFormat
		}
		backends = append(backends,
			logging.NewBackendFormatter(logging.NewLogBackend(l.out, "", 0), format))
	}
	if l.file != nil {
		backends = append(backends,
			logging.NewBackendFormatter(logging.NewLogBackend(l.file, "", 0), plainFormat))
	}

	switch len(backends) {
	case 0:
		l.backend = logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
	case 1:
		l.backend = logging.AddModuleLevel(backends[0])
	default:
		l.backend = logging.MultiLogger(backends...)
	}

	l.backend.SetLevel(l.level, "")
	l.log.SetBackend(l.backend)
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) {
	l.log.Debug(fmt.Sprint(v...))
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) {
	l.log.Info(fmt.Sprint(v...))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) {
	l.log.Warning(fmt.Sprint(v...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log.Warningf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) {
	l.log.Error(fmt.Sprint(v...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(v ...interface{}) {
	l.log.Critical(fmt.Sprint(v...))
	l.Close()
	os.Exit(1)
}

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.log.Criticalf(format, v...)
	l.Close()
	os.Exit(1)
}

// IsDebug reports whether debug records are emitted
func (l *Logger) IsDebug() bool {
	return l.level >= logging.DEBUG
}

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.level = parseLevel(levelStr)
	l.backend.SetLevel(l.level, "")
}

// SetOutput sets the console output writer for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
	l.rebuild()
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.useColors = enable
	l.rebuild()
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
		l.rebuild()
	}
}
