package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSplitsLinesAndAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "engine.txt")
	l := New(path)

	l.Write([]byte("first\nsec"))
	l.Write([]byte("ond\n"))
	l.Log("third")

	got := l.Lines()
	want := []string{"first", "second", "third"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected lines %v, got %v", want, got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got error %v", err)
	}
	if string(data) != "first\nsecond\nthird\n" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestLinesAreBounded(t *testing.T) {
	l := New("-")
	for i := 0; i < maxLines+10; i++ {
		l.Log("line")
	}
	l.Log("last")
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("expected %d lines, got %d", maxLines, len(lines))
	}
	if lines[len(lines)-1] != "last" {
		t.Errorf("expected newest line last, got %q", lines[len(lines)-1])
	}
}

func TestSlogWritesThroughLogger(t *testing.T) {
	l := New("-")
	log := l.Slog(slog.LevelInfo)
	log.Debug("hidden")
	log.Info("app switched", "name", "fly_scene")

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %v", lines)
	}
	if !strings.Contains(lines[0], "app switched") || !strings.Contains(lines[0], "name=fly_scene") {
		t.Errorf("unexpected line %q", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	defer SetLogger(nil)
	l := New("-")
	SetLogger(l.Slog(slog.LevelInfo))
	L().Info("visible")
	SetLogger(nil)
	L().Info("dropped")
	if n := len(l.Lines()); n != 1 {
		t.Errorf("expected 1 line, got %d", n)
	}
}
