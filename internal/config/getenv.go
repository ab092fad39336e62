package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrEnvRequired = errors.New("env is required")
	ErrEnvInvalid  = errors.New("env is invalid")
)

// getenv читает переменные окружения и копит ошибки, чтобы сообщить обо всех сразу.
type getenv struct {
	errs []error
}

func (ge *getenv) Err() error {
	return errors.Join(ge.errs...)
}

type parseFunc[T any] func(s string) (T, error)

func getValue[T any](ge *getenv, key string, required bool, defaultValue T, parse parseFunc[T]) T {
	s, ok := os.LookupEnv(key)
	s = strings.TrimSpace(s)
	if !ok || s == "" {
		if required {
			ge.errs = append(ge.errs, fmt.Errorf("%s %w", key, ErrEnvRequired))
		}
		return defaultValue
	}

	v, err := parse(s)
	if err != nil {
		ge.errs = append(ge.errs, fmt.Errorf("%s %w: %w", key, ErrEnvInvalid, err))
		return defaultValue
	}
	return v
}

// Path разворачивает "~/" в домашний каталог и нормализует путь.
func (ge *getenv) Path(key string, required bool, defaultValue string) string {
	return getValue(ge, key, required, defaultValue, func(s string) (string, error) {
		if rest, ok := strings.CutPrefix(s, "~/"); ok {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			s = filepath.Join(home, rest)
		}
		return filepath.Clean(s), nil
	})
}

func (ge *getenv) LogLevel(key string, required bool, defaultValue slog.Level) slog.Level {
	return getValue(ge, key, required, defaultValue, func(s string) (slog.Level, error) {
		var v slog.Level
		err := v.UnmarshalText([]byte(s))
		return v, err
	})
}

func (ge *getenv) Bool(key string, required bool, defaultValue bool) bool {
	return getValue(ge, key, required, defaultValue, func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		default:
			return false, fmt.Errorf("invalid boolean value %q, want: true/false, yes/no, on/off, 1/0", s)
		}
	})
}
