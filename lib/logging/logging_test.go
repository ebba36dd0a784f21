package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(1, &buf)

	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "hidden")
}

func TestComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	Setup(1, &buf)

	l := Component("factory")
	l.Warn().Msg("tagged")

	assert.Contains(t, buf.String(), "component=factory")
}
