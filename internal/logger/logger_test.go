package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "warn level", level: "warn"},
		{name: "invalid level defaults to info", level: "invalid"},
		{name: "empty level defaults to info", level: ""},
		{name: "uppercase level", level: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level, &bytes.Buffer{})
			require.NotNil(t, logger)
			require.NotNil(t, logger.log)
		})
	}
}

func TestNew_NilOutput(t *testing.T) {
	logger := New("info", nil)
	require.NotNil(t, logger)
	require.NotNil(t, logger.log)
}

func TestLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("warn", buf)

	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")
	logger.Warn().Msg("warn message")
	logger.Error().Msg("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogger_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("debug", buf)

	logger.Debug().
		Str("prefix", "os.pa").
		Strs("candidates", []string{"os.path", "os.pardir"}).
		Int("count", 2).
		Bool("final", true).
		Dur("elapsed", 1500*time.Microsecond).
		Err(errors.New("boom")).
		Msg("matched")

	output := buf.String()
	assert.Contains(t, output, "matched")
	assert.Contains(t, output, "os.pa")
	assert.Contains(t, output, "os.path,os.pardir")
	// keys are colorized, so check keys and values separately
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "=2")
	assert.Contains(t, output, "=true")
	assert.Contains(t, output, "=1.5")
	assert.Contains(t, output, "boom")
}

func TestLogger_ErrNil(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("info", buf)

	logger.Info().Err(nil).Msg("clean run")
	assert.NotContains(t, buf.String(), "error")
}

func TestLogger_Component(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("info", buf).Component("modules")

	logger.Info().Msg("refreshed")
	assert.Contains(t, buf.String(), "component")
	assert.Contains(t, buf.String(), "=modules")
}

func TestLogger_Enabled(t *testing.T) {
	logger := New("info", &bytes.Buffer{})

	assert.True(t, logger.Enabled("warn"))
	assert.True(t, logger.Enabled("info"))
	assert.False(t, logger.Enabled("debug"))
	assert.False(t, logger.Enabled("bogus"))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error().Str("k", "v").Msg("dropped")
	})
	assert.False(t, logger.Enabled("error"))
}
