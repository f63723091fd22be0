package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quiet, verbose bool
		want           logrus.Level
	}{
		{false, false, logrus.InfoLevel},
		{false, true, logrus.DebugLevel},
		{true, false, logrus.WarnLevel},
		{true, true, logrus.WarnLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.quiet, tt.verbose))
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := New(&buf, false, false)

	logger.Debug("hidden")
	logger.WithField("out", "file.enc").Info("encrypted")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "encrypted")
	assert.Contains(t, output, "out=file.enc")
	assert.NotContains(t, output, "time=")
}

func TestQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := New(&buf, true, false)
	logger.Info("progress")
	logger.Warn("careful")

	assert.NotContains(t, buf.String(), "progress")
	assert.Contains(t, buf.String(), "careful")
}
