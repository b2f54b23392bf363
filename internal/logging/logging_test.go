package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, clog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, clog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, clog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, clog.InfoLevel, ParseLevel("chatty"))
}

func TestNewWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "warn")

	l.Info("hidden")
	l.Warn("storage write failed", "key", "todos")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "storage write failed")
	assert.Contains(t, out, "key=todos")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tada.log")
	l, closeFn, err := New(Config{Path: path, Level: "debug", Command: "todo"})
	require.NoError(t, err)

	l.Debug("loaded", "items", 3)
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "loaded")
	assert.Contains(t, string(b), "command=todo")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	l, closeFn, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Error("nowhere")
	require.NoError(t, closeFn())
}
