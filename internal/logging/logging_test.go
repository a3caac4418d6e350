package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(&bytes.Buffer{}, tt.name)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "debug", Level(true))
	assert.Equal(t, "warn", Level(false))
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")

	log.WithFields(logrus.Fields{"tx": "7400f15365", "port": "/dev/ttyUSB0"}).Debug("sending frame")
	assert.Equal(t, "[DEBUG] sending frame port=/dev/ttyUSB0 tx=7400f15365\n", buf.String())

	buf.Reset()
	log.WithError(errors.New("boom")).Warn("flush failed")
	assert.Equal(t, "[WARNING] flush failed error=boom\n", buf.String())
}

func TestQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Level(false))
	log.Debug("hidden")
	log.Info("hidden")
	assert.Empty(t, buf.String())
}
