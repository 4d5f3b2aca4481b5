package logger

import (
	"bytes"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is the log file path, relative to the working directory.
const DefaultPath = "logs/viewer.log"

// maxLines bounds the in-memory history shown by the console overlay.
const maxLines = 500

// Logger writes structured records to a rotating file and keeps the most recent lines in memory
// for the console overlay.
type Logger struct {
	*slog.Logger

	mu      sync.Mutex
	lines   []string
	partial []byte
	file    io.WriteCloser
}

// New returns a Logger that appends to path (rotated at 10 MB, 3 backups kept).
// An empty path keeps records in memory only.
func New(path string) *Logger {
	l := &Logger{}
	var w io.Writer = memWriter{l}
	if path != "" {
		l.file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		w = io.MultiWriter(l.file, w)
	}
	l.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type memWriter struct {
	l *Logger
}

// Write splits handler output into lines. The text handler emits one record per Write.
func (w memWriter) Write(p []byte) (int, error) {
	l := w.l
	l.mu.Lock()
	defer l.mu.Unlock()
	l.partial = append(l.partial, p...)
	for {
		i := bytes.IndexByte(l.partial, '\n')
		if i < 0 {
			break
		}
		l.lines = append(l.lines, string(l.partial[:i]))
		l.partial = l.partial[i+1:]
	}
	if over := len(l.lines) - maxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	return len(p), nil
}
