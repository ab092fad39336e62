package memstor

import (
	"fmt"
	"slices"

	"todolist/internal/model"
)

type Task = model.Task

var (
	ErrTaskNotFound    = model.ErrTaskNotFound
	ErrDuplicateID     = model.ErrDuplicateID
	ErrInvalidArgument = model.ErrInvalidArgument
)

// Memstor хранит задачи в памяти в порядке добавления.
//
// Наружу отдаются только копии задач, изменение на месте выполняется через Update.
// Не предназначен для конкурентного использования.
type Memstor struct {
	tasks  []Task
	nextID int64
}

func New() *Memstor {
	return &Memstor{nextID: 1}
}

// Add создает задачу с очередным ID. При ошибке список не меняется.
func (m *Memstor) Add(description string) (Task, error) {
	task, err := model.NewTask(m.nextID, description)
	if err != nil {
		return Task{}, err
	}
	m.tasks = append(m.tasks, task)
	m.nextID++
	return task, nil
}

// Remove удаляет первую задачу с указанным ID.
func (m *Memstor) Remove(id int64) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.tasks = slices.Delete(m.tasks, i, i+1)
	return true
}

func (m *Memstor) Complete(id int64) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.tasks[i].MarkCompleted()
	return true
}

func (m *Memstor) All() []Task {
	return slices.Clone(m.tasks)
}

// Get возвращает копию задачи.
func (m *Memstor) Get(id int64) (Task, bool) {
	i := m.index(id)
	if i < 0 {
		return Task{}, false
	}
	return m.tasks[i], true
}

// Update применяет fn к копии задачи и, если результат корректен, сохраняет его.
// Смена ID допускается, если новый ID не занят другой задачей.
func (m *Memstor) Update(id int64, fn func(*Task) error) error {
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	task := m.tasks[i]
	if err := fn(&task); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if task.ID != id {
		if m.index(task.ID) >= 0 {
			return fmt.Errorf("%w: %d", ErrDuplicateID, task.ID)
		}
		if task.ID >= m.nextID {
			m.nextID = task.ID + 1
		}
	}

	m.tasks[i] = task
	return nil
}

func (m *Memstor) Clear() {
	m.tasks = nil
	m.nextID = 1
}

func (m *Memstor) Count() int {
	return len(m.tasks)
}

func (m *Memstor) NextID() int64 {
	return m.nextID
}

func (m *Memstor) Completed() []Task {
	return m.filter(func(t Task) bool { return t.Completed })
}

func (m *Memstor) Pending() []Task {
	return m.filter(func(t Task) bool { return !t.Completed })
}

// ReplaceAll заменяет содержимое списка, например после загрузки из файла.
// Задачи с дублирующимися ID или нарушенными инвариантами отклоняются целиком,
// список при этом не меняется.
func (m *Memstor) ReplaceAll(tasks []Task) error {
	seen := make(map[int64]struct{}, len(tasks))
	nextID := int64(1)
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", task.ID, err)
		}
		if _, ok := seen[task.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, task.ID)
		}
		seen[task.ID] = struct{}{}
		if task.ID >= nextID {
			nextID = task.ID + 1
		}
	}

	m.tasks = slices.Clone(tasks)
	m.nextID = nextID
	return nil
}

func (m *Memstor) index(id int64) int {
	return slices.IndexFunc(m.tasks, func(t Task) bool { return t.ID == id })
}

func (m *Memstor) filter(keep func(Task) bool) []Task {
	res := make([]Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if keep(t) {
			res = append(res, t)
		}
	}
	return res
}
