package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsLinesInMemory(t *testing.T) {
	l := New("")
	l.Log("hello")
	l.Logf("world %d", 42)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[1], "world 42")
}

func TestLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.txt")
	l := New(path)
	l.Log("first")
	l.Log("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestLinesReturnsACopy(t *testing.T) {
	l := New("")
	l.Log("only")

	lines := l.Lines()
	lines[0] = "mutated"

	assert.Contains(t, l.Lines()[0], "only")
}
