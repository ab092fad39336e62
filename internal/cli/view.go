package cli

import (
	"strings"

	"todolist/internal/model"

	"github.com/mattn/go-runewidth"
)

const (
	clearScreen      = "\033[H\033[2J"
	descriptionWidth = 30
	tableWidth       = 70
)

// cellWidth считает ширину в колонках терминала. Неоднозначные символы
// считаются узкими независимо от локали, чтобы таблица не зависела от окружения.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func (a *App) header() {
	if a.opts.Interactive {
		a.printf("%s", clearScreen)
	}
	a.printf("========================================\n")
	a.printf("         TO-DO LIST MANAGER v1.0        \n")
	a.printf("========================================\n")
}

func (a *App) menu() {
	a.printf("\nMAIN MENU:\n")
	a.printf("1. Add a new task\n")
	a.printf("2. View all tasks\n")
	a.printf("3. Mark task as completed\n")
	a.printf("4. Remove a task\n")
	a.printf("5. Save tasks to file\n")
	a.printf("6. Load tasks from file\n")
	a.printf("7. Exit\n")
	a.printf("----------------------------------------\n")
	a.printf("Enter your choice (1-7): ")
}

func (a *App) showTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		a.printf("\nNo tasks to display.\n")
		return
	}

	a.printf("\n----- Your Tasks -----\n")
	a.printf("%-5s | %-8s | %s | %s\n", "ID", "STATUS", descriptionCell("DESCRIPTION"), "CREATED ON")
	a.printf("%s\n", strings.Repeat("-", tableWidth))
	for _, t := range tasks {
		a.printf("%-5d | %-8s | %s | %s\n", t.ID, t.Status(), descriptionCell(t.Description), t.CreatedOn())
	}
	a.printf("%s\n", strings.Repeat("-", tableWidth))
	a.printf("Total: %d task(s)\n", len(tasks))
}

func (a *App) showSummary() {
	if a.list.Count() == 0 {
		return
	}
	a.printf("Pending: %d, completed: %d\n", len(a.list.Pending()), len(a.list.Completed()))
}

// descriptionCell возвращает описание, дополненное пробелами до ширины колонки.
// Длинное описание обрезается с "...". Переводы строк заменяются пробелами,
// чтобы не ломать таблицу.
func descriptionCell(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)
	return cellWidth.FillRight(cellWidth.Truncate(s, descriptionWidth, "..."), descriptionWidth)
}
