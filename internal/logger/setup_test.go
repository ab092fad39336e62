package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"todolist/internal/config"

	"github.com/nalgeon/be"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Logger
		want string
	}{
		{"text", config.Logger{Level: slog.LevelInfo, Plaintext: true}, "msg=hello count=2"},
		{"json", config.Logger{Level: slog.LevelInfo}, `"msg":"hello","count":2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.cfg)
			log.Debug("hidden")
			log.Info("hello", "count", 2)

			be.True(t, strings.Contains(buf.String(), tt.want))
			be.True(t, !strings.Contains(buf.String(), "hidden"))
		})
	}
}
