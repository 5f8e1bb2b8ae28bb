package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""), "niveau inconnu : repli sur info")
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestNew_EvenementsDisponibles(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	require.NotNil(t, l)

	// Les événements restent constructibles même sous le seuil configuré.
	assert.NotNil(t, l.Debug())
	assert.NotNil(t, l.Info())
	assert.NotNil(t, l.Warn())
	assert.NotNil(t, l.Error())
}
