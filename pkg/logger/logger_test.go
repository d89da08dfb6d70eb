package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestComponent_AgregaCampos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.FromWriter(&buf).Component("engine").WithStr("timebox_id", "tb-1")

	log.Info().Msg("R1 aplicada")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "engine", ev["component"])
	assert.Equal(t, "tb-1", ev["timebox_id"])
	assert.Equal(t, "R1 aplicada", ev["message"])
}
