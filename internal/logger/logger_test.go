package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/KromaEnergia/api-arremate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProducaoEmJSON(t *testing.T) {
	Init(&config.Config{App: config.AppConfig{Environment: "production", LogLevel: "warn"}})
	defer Init(&config.Config{App: config.AppConfig{LogLevel: "info"}})

	var buf bytes.Buffer
	SetOutput(&buf)

	Info().Msg("ignorado")
	assert.Zero(t, buf.Len())

	Warn().Str("lead", "42").Msg("webhook falhou")
	var linha map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &linha))
	assert.Equal(t, "warn", linha["level"])
	assert.Equal(t, "api-arremate", linha["app"])
	assert.Equal(t, "42", linha["lead"])
}
