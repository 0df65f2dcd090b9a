// Package logger configura el logging estructurado del servicio sobre zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger logger raíz del servicio. Cada evento lleva timestamp y el nombre
// del servicio como campo fijo.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz. En development escribe consola legible con hora
// corta; en cualquier otro entorno, JSON por línea para el agregador.
func New(env, service, level string) *Logger {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	// Las librerías que escriben por el logger global de zerolog salen por
	// el mismo destino y con los mismos campos.
	log.Logger = zl

	return &Logger{zl: zl}
}

// Component devuelve un sublogger con el componente como campo fijo,
// ej. "postgres" u "http".
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug..Fatal delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog devuelve el logger interno por si hace falta la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
