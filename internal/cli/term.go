package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal сообщает, подключен ли файл к терминалу.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
