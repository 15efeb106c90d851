// Package logger is a small line logger: entries are kept in memory and
// appended to a file on disk. The game loop writes world loads and
// swallowed tick errors here so failures inside a frame stay visible
// without ever interrupting play.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the game log file, relative to the working directory.
const DefaultPath = "logs/game.txt"

// Logger stores timestamped lines in memory and appends them to its file.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a logger writing to path and ensures its directory exists.
// An empty path keeps the log memory-only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path}
}

// Log records one line, prefixed with a timestamp. Disk errors are
// ignored; the in-memory copy is always kept.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf records one formatted line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all recorded lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
