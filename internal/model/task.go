package model

import (
	"time"
)

const (
	// MaxDescriptionLen - максимальная длина описания в байтах.
	MaxDescriptionLen = 64 << 10

	StatusPending = "PENDING"
	StatusDone    = "DONE"

	timestampLayout = "2006-01-02 15:04:05"
	invalidDate     = "Invalid date"
	notCompleted    = "Not completed"
)

// nowFunc подменяется в тестах.
var nowFunc = time.Now

// Task представляет одну задачу списка дел.
//
// Временные метки хранятся с точностью до секунды, так как в файле
// они записываются как unix-время. Нулевой CompletedAt означает,
// что задача еще не выполнена.
type Task struct {
	ID          int64
	Description string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt time.Time
}

// NewTask создает невыполненную задачу с текущим временем создания.
func NewTask(id int64, description string) (Task, error) {
	if err := validateID(id); err != nil {
		return Task{}, err
	}
	if err := validateDescription(description); err != nil {
		return Task{}, err
	}
	return Task{
		ID:          id,
		Description: description,
		CreatedAt:   now(),
	}, nil
}

// MarkCompleted переводит задачу в выполненные. Повторный вызов
// перезаписывает CompletedAt.
func (t *Task) MarkCompleted() {
	ts := now()
	if ts.Before(t.CreatedAt) {
		ts = t.CreatedAt
	}
	t.Completed = true
	t.CompletedAt = ts
}

func (t *Task) SetID(id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (t *Task) SetDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	t.Description = description
	return nil
}

// Validate проверяет инварианты задачи.
func (t Task) Validate() error {
	if err := validateID(t.ID); err != nil {
		return err
	}
	if err := validateDescription(t.Description); err != nil {
		return err
	}
	if t.Completed == t.CompletedAt.IsZero() {
		return invalidf("completion time must be set if and only if the task is completed")
	}
	if t.Completed && t.CompletedAt.Before(t.CreatedAt) {
		return invalidf("task completed before it was created")
	}
	return nil
}

func (t Task) Status() string {
	if t.Completed {
		return StatusDone
	}
	return StatusPending
}

func (t Task) CreatedOn() string {
	return FormatTimestamp(t.CreatedAt)
}

func (t Task) CompletedOn() string {
	if !t.Completed {
		return notCompleted
	}
	return FormatTimestamp(t.CompletedAt)
}

// FormatTimestamp возвращает время в формате "YYYY-MM-DD HH:MM:SS" (локальное время).
func FormatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return invalidDate
	}
	return ts.Local().Format(timestampLayout)
}

func now() time.Time {
	return time.Unix(nowFunc().Unix(), 0)
}

func validateID(id int64) error {
	if id <= 0 {
		return invalidf("task id must be positive, got %d", id)
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" {
		return invalidf("task description cannot be empty")
	}
	if len(description) > MaxDescriptionLen {
		return invalidf("task description is longer than %d bytes", MaxDescriptionLen)
	}
	return nil
}
