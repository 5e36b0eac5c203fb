package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		h, m, s uint32
	}{
		{0, 0, 0, 0},
		{59 * time.Second, 0, 0, 59},
		{60 * time.Second, 0, 1, 0},
		{61 * time.Second, 0, 1, 1},
		{time.Hour + 2*time.Minute + 3*time.Second, 1, 2, 3},
		{1500 * time.Millisecond, 0, 0, 2},
	}
	for _, test := range tests {
		h, m, s := ParseTime(test.elapsed)
		assert.Equal(t, test.h, h, "hours of %v", test.elapsed)
		assert.Equal(t, test.m, m, "minutes of %v", test.elapsed)
		assert.Equal(t, test.s, s, "seconds of %v", test.elapsed)
	}
}

func TestNewLoggerTo_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warning", "Test")

	log.Info("hidden message")
	log.Warning("visible message")

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "visible message")
}

func TestNewLoggerTo_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "chatty", "Test")

	log.Debug("debug message")
	log.Info("info message")

	assert.NotContains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "info message")
}

func TestNewLogger_SatisfiesInterface(t *testing.T) {
	var _ Logger = NewLogger("info", "Test")
}
