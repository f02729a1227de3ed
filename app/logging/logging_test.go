package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	New(&buf, true).Debug("shown", "group", "1")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFileAppends(t *testing.T) {
	dir := t.TempDir()
	logger, f, err := NewFile(dir, false)
	require.NoError(t, err)
	logger.Info("loaded roster", "groups", 2)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded roster")
}
