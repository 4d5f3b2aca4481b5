package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.log")
	l := New(path)
	l.Info("part selected", "name", "Servo Gate", "gate", "open")
	require.NoError(t, l.Close())

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `msg="part selected"`)
	assert.Contains(t, lines[0], `name="Servo Gate"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gate=open")
}

func TestLogger_MemoryOnly(t *testing.T) {
	l := New("")
	l.Debug("resize", "width", 800)
	assert.Len(t, l.Lines(), 1)
	assert.NoError(t, l.Close())
}

func TestLogger_KeepsRecentLines(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+20; i++ {
		l.Info(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.Contains(t, lines[0], `"line 20"`)
	assert.Contains(t, lines[len(lines)-1], fmt.Sprintf(`"line %d"`, maxLines+19))
}
