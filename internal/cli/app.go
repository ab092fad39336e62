package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"todolist/internal/lineio"
	"todolist/internal/memstor"
	"todolist/internal/model"
)

const (
	choiceAdd = iota + 1
	choiceList
	choiceComplete
	choiceRemove
	choiceSave
	choiceLoad
	choiceExit
)

// Store - хранилище, в которое сохраняется список задач.
type Store interface {
	Exists() bool
	Save(tasks []model.Task) error
	Load() ([]model.Task, error)
}

type Options struct {
	Autoload          bool // загрузить задачи при старте, если файл существует
	ConfirmSaveOnExit bool // предложить сохранить задачи при выходе
	Interactive       bool // очищать экран и делать паузы после каждого действия
}

// App - интерактивное меню списка задач.
type App struct {
	in    *lineio.Reader
	out   io.Writer
	list  *memstor.Memstor
	store Store
	opts  Options
	log   *slog.Logger
}

func New(in io.Reader, out io.Writer, list *memstor.Memstor, store Store, opts Options) *App {
	return &App{
		in:    lineio.NewReader(in, model.MaxDescriptionLen),
		out:   out,
		list:  list,
		store: store,
		opts:  opts,
		log:   slog.Default().With("component", "cli"),
	}
}

// Run показывает меню, пока пользователь не выберет выход или не закончится ввод.
func (a *App) Run() error {
	err := a.run()
	if errors.Is(err, io.EOF) {
		a.printf("\nGoodbye!\n")
		return nil
	}
	return err
}

func (a *App) run() error {
	if a.opts.Autoload && a.store.Exists() {
		a.header()
		a.printf("Loading saved tasks...\n")
		a.load()
		a.pause()
	}

	for {
		a.header()
		a.menu()

		choice, err := a.readChoice()
		if err != nil {
			return err
		}
		a.log.Debug("menu choice", "choice", choice)

		switch choice {
		case choiceAdd:
			err = a.addTask()
		case choiceList:
			a.header()
			a.printf("=== VIEW ALL TASKS ===\n")
			a.showTasks(a.list.All())
			a.showSummary()
		case choiceComplete:
			err = a.completeTask()
		case choiceRemove:
			err = a.removeTask()
		case choiceSave:
			a.header()
			a.printf("=== SAVE TASKS TO FILE ===\n")
			a.save()
		case choiceLoad:
			err = a.loadTasks()
		case choiceExit:
			return a.exit()
		}
		if errors.Is(err, lineio.ErrTooLong) {
			a.log.Debug("input rejected", "error", err)
			a.printf("\nInput is too long (max %d bytes).\n", model.MaxDescriptionLen)
			err = nil
		}
		if err != nil {
			return err
		}
		a.pause()
	}
}

func (a *App) addTask() error {
	a.header()
	a.printf("=== ADD NEW TASK ===\n\n")
	a.printf("Enter task description: ")
	description, err := a.readLine()
	if err != nil {
		return err
	}

	task, err := a.list.Add(description)
	if err != nil {
		a.log.Debug("add task rejected", "error", err)
		a.printf("\nTask description cannot be empty.\n")
		return nil
	}
	a.printf("\nTask added successfully! (ID: %d)\n", task.ID)
	return nil
}

func (a *App) completeTask() error {
	a.header()
	a.printf("=== MARK TASK AS COMPLETED ===\n")
	a.showTasks(a.list.All())
	if a.list.Count() == 0 {
		return nil
	}

	a.printf("\nEnter the ID of the task to mark as completed: ")
	id, ok, err := a.readID()
	if err != nil || !ok {
		return err
	}

	if a.list.Complete(id) {
		a.printf("\nTask marked as completed!\n")
	} else {
		a.printf("\nNo task found with ID: %d\n", id)
	}
	return nil
}

func (a *App) removeTask() error {
	a.header()
	a.printf("=== REMOVE TASK ===\n")
	a.showTasks(a.list.All())
	if a.list.Count() == 0 {
		return nil
	}

	a.printf("\nEnter the ID of the task to remove: ")
	id, ok, err := a.readID()
	if err != nil || !ok {
		return err
	}

	yes, err := a.confirm("Are you sure you want to delete this task? (y/n): ")
	if err != nil {
		return err
	}
	if !yes {
		a.printf("\nTask removal canceled.\n")
		return nil
	}

	if a.list.Remove(id) {
		a.printf("\nTask removed successfully!\n")
	} else {
		a.printf("\nNo task found with ID: %d\n", id)
	}
	return nil
}

func (a *App) loadTasks() error {
	a.header()
	a.printf("=== LOAD TASKS FROM FILE ===\n")

	if !a.store.Exists() {
		a.printf("No saved file found.\n")
		return nil
	}

	if a.list.Count() > 0 {
		yes, err := a.confirm("This will overwrite current tasks. Continue? (y/n): ")
		if err != nil {
			return err
		}
		if !yes {
			a.printf("Load canceled.\n")
			return nil
		}
	}

	a.load()
	return nil
}

func (a *App) exit() error {
	a.header()
	a.printf("=== EXIT ===\n")

	if a.opts.ConfirmSaveOnExit && a.list.Count() > 0 {
		yes, err := a.confirm("Do you want to save your tasks before exiting? (y/n): ")
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, lineio.ErrTooLong) {
			return err
		}
		if yes {
			a.save()
		}
	}

	a.printf("\nGoodbye!\n")
	return nil
}

func (a *App) save() {
	if a.list.Count() == 0 {
		a.printf("No tasks to save.\n")
		return
	}
	if err := a.store.Save(a.list.All()); err != nil {
		a.log.Error("save failed", "error", err)
		a.printf("Failed to save tasks.\n")
		return
	}
	a.printf("Tasks saved successfully.\n")
}

// load заменяет список задачами из хранилища. Некорректные строки пропускаются,
// но если файл прочитать не удалось совсем, текущий список сохраняется.
func (a *App) load() {
	tasks, err := a.store.Load()
	switch {
	case err == nil:
	case errors.Is(err, model.ErrIO) && len(tasks) == 0:
		a.log.Error("load failed", "error", err)
		a.printf("Failed to load tasks.\n")
		return
	default:
		a.printf("Warning: some entries could not be loaded:\n%v\n", err)
	}

	if err := a.list.ReplaceAll(tasks); err != nil {
		a.log.Error("replace tasks failed", "error", err)
		a.printf("Failed to load tasks: %v\n", err)
		return
	}
	a.printf("Loaded %d task(s).\n", len(tasks))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
