package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	// Desconocido o vacío caen en info.
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
}

func TestNewAplicaNivelYServicio(t *testing.T) {
	l := New("production", "cerveceria-api", "warn")
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Warn().Msg("prueba")
	assert.Contains(t, buf.String(), `"service":"cerveceria-api"`)
}

func TestComponentAgregaElCampo(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zl: zerolog.New(&buf)}

	l.Component("postgres").Info().Msg("conectado")
	out := buf.String()
	assert.Contains(t, out, `"component":"postgres"`)
	assert.Contains(t, out, `"message":"conectado"`)
}
