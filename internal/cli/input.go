package cli

import (
	"errors"
	"strconv"
	"strings"

	"todolist/internal/lineio"
)

// readLine возвращает io.EOF в конце ввода и lineio.ErrTooLong для строки
// длиннее model.MaxDescriptionLen. Такая строка пропускается целиком.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) readChoice() (int, error) {
	for {
		line, err := a.readLine()
		if errors.Is(err, lineio.ErrTooLong) {
			a.printf("Invalid input. Please enter a number: ")
			continue
		}
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		switch {
		case err != nil:
			a.printf("Invalid input. Please enter a number: ")
		case choice < choiceAdd || choice > choiceExit:
			a.printf("Invalid choice. Please enter a number between %d and %d: ", choiceAdd, choiceExit)
		default:
			return choice, nil
		}
	}
}

// readID читает ID задачи. ok == false, если ввод не является числом.
func (a *App) readID() (id int64, ok bool, err error) {
	line, err := a.readLine()
	if err != nil {
		return 0, false, err
	}
	id, err = strconv.ParseInt(line, 10, 64)
	if err != nil {
		a.printf("\nInvalid input.\n")
		return 0, false, nil
	}
	return id, true, nil
}

func (a *App) confirm(prompt string) (bool, error) {
	a.printf("%s", prompt)
	line, err := a.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(line, "y") || strings.HasPrefix(line, "Y"), nil
}

func (a *App) pause() {
	if !a.opts.Interactive {
		return
	}
	a.printf("\nPress Enter to continue...")
	_, _ = a.readLine()
}
