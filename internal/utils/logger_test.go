package utils

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out, debug bytes.Buffer
	logger := newLogger(&out, &debug)

	logger.Info("started")
	logger.Warn("careful")
	logger.Error("broken")
	logger.Debug("details")

	assert.Contains(t, out.String(), "[INFO] ")
	assert.Contains(t, out.String(), "started")
	assert.Contains(t, out.String(), "[WARN] ")
	assert.Contains(t, out.String(), "[ERROR] ")
	assert.NotContains(t, out.String(), "details")
	assert.Contains(t, debug.String(), "[DEBUG] ")

	t.Run("fatal exits with status 1", func(t *testing.T) {
		code := -1
		osExit = func(c int) { code = c }
		defer func() { osExit = os.Exit }()

		logger.Fatal("allocation failed")
		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "[FATAL] ")
		assert.Contains(t, out.String(), "allocation failed")
	})

	t.Run("debug can be discarded", func(t *testing.T) {
		var buf bytes.Buffer
		quiet := newLogger(&buf, io.Discard)
		quiet.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestGetLoggerWithoutInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
	assert.Same(t, GetLogger(), GetLogger())
}
