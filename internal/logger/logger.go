package logger

import (
	"io"
	"os"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/config"
	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configura nível e formato. Em produção sai JSON; fora dela, console.
func Init(cfg *config.Config) {
	nivel, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(nivel)

	var out io.Writer = os.Stdout
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log = zerolog.New(out).With().Timestamp().Str("app", "api-arremate").Logger()
}

// SetOutput redireciona a saída; usado nos testes.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
func Fatal() *zerolog.Event { return log.Fatal() }
