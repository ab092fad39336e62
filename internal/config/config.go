package config

import (
	"log/slog"
)

const DefaultFile = "data/tasks.txt"

type Logger struct {
	Level     slog.Level
	Plaintext bool
}

type Storage struct {
	File     string // путь к файлу задач
	Autoload bool   // загружать задачи при старте, если файл существует
}

type CLI struct {
	ConfirmSaveOnExit bool
}

type Config struct {
	Logger  Logger
	Storage Storage
	CLI     CLI
}

func Load() (Config, error) {
	var ge getenv
	cfg := Config{
		Logger: Logger{
			Level:     ge.LogLevel("LOG_LEVEL", false, slog.LevelWarn),
			Plaintext: ge.Bool("LOG_PLAINTEXT", false, true),
		},
		Storage: Storage{
			File:     ge.Path("TODO_FILE", false, DefaultFile),
			Autoload: ge.Bool("TODO_AUTOLOAD", false, true),
		},
		CLI: CLI{
			ConfirmSaveOnExit: ge.Bool("TODO_CONFIRM_SAVE_ON_EXIT", false, true),
		},
	}
	return cfg, ge.Err()
}
