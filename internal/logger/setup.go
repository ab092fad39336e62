package logger

import (
	"io"
	"log/slog"
	"os"

	"todolist/internal/config"
)

// SetupDefault настраивает логгер по умолчанию. Логи пишутся в stderr,
// так как stdout занят меню.
func SetupDefault(cfg config.Logger) {
	slog.SetDefault(New(os.Stderr, cfg))
}

func New(w io.Writer, cfg config.Logger) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Plaintext {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
