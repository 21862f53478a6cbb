package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	prevLevel, prevLogger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(-1))
	assert.Equal(t, zerolog.WarnLevel, LevelFor(0))
	assert.Equal(t, zerolog.InfoLevel, LevelFor(1))
	assert.Equal(t, zerolog.DebugLevel, LevelFor(2))
	assert.Equal(t, zerolog.TraceLevel, LevelFor(5))
}

func TestSetupWritesComponentField(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	Setup(2, &buf)
	logger := Component("install")
	logger.Debug().Str("item", "config.yml").Msg("copying")

	out := buf.String()
	assert.Contains(t, out, "copying")
	assert.Contains(t, out, "install")
	assert.Contains(t, out, "config.yml")
}

func TestSetupQuietDropsDebug(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	Setup(0, &buf)
	logger := Component("install")
	logger.Debug().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestOperationStart(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	Setup(2, &buf)
	done := OperationStart(Component("install"), "materialize")
	done()
	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
}
