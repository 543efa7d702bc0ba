package logger

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/game).
const LogFilePath = "logs/engine.txt"

// maxLines is how many recent lines are kept in memory for the overlay.
const maxLines = 256

// Logger stores recent log lines in memory and appends every line to a file on disk.
// It implements io.Writer so a slog handler can write through it.
type Logger struct {
	mu      sync.Mutex
	path    string
	lines   []string
	partial []byte
}

// New returns a Logger appending to path and ensures its directory exists. An empty path uses
// LogFilePath; "-" keeps lines in memory only.
func New(path string) *Logger {
	if path == "" {
		path = LogFilePath
	}
	if path != "-" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0, maxLines)}
}

// Write splits p into lines, keeps them in memory and appends them to the log file.
// Incomplete trailing data is held until the next newline.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	buf := append(l.partial, p...)
	var complete []string
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		complete = append(complete, string(buf[:i]))
		buf = buf[i+1:]
	}
	l.partial = append([]byte(nil), buf...)
	if len(complete) == 0 {
		return len(p), nil
	}

	l.lines = append(l.lines, complete...)
	if over := len(l.lines) - maxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}

	if l.path == "-" {
		return len(p), nil
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// the in-memory copy is still useful, so the write itself succeeds
		return len(p), nil
	}
	_, _ = f.WriteString(strings.Join(complete, "\n") + "\n")
	_ = f.Close()
	return len(p), nil
}

// Log appends a single line.
func (l *Logger) Log(line string) {
	_, _ = l.Write([]byte(line + "\n"))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Slog returns a text slog.Logger writing through l at the given minimum level.
func (l *Logger) Slog(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: parse level %q: %w", s, err)
	}
	return lvl, nil
}
