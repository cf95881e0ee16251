package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	Initialize(Config{Level: "debug", Format: "json", Output: &buf})

	Debug("debug message", map[string]interface{}{"k": "v"})
	Info("info message")
	Warn("warn message")
	Error("error message", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, `"message":"debug message"`)
	assert.Contains(t, out, `"k":"v"`)
	assert.Contains(t, out, `"message":"info message"`)
	assert.Contains(t, out, `"message":"warn message"`)
	assert.Contains(t, out, `"message":"error message"`)
	assert.Contains(t, out, `"caller"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Initialize(Config{Level: "warn", Format: "json", Output: &buf})

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn")

	out := buf.String()
	require.NotContains(t, out, "hidden debug")
	require.NotContains(t, out, "hidden info")
	assert.Contains(t, out, "visible warn")
}
