package memstor

import (
	"errors"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func mustAdd(t *testing.T, m *Memstor, descriptions ...string) {
	t.Helper()
	for _, d := range descriptions {
		_, err := m.Add(d)
		be.Err(t, err, nil)
	}
}

func ids(tasks []Task) []int64 {
	res := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, t.ID)
	}
	return res
}

func TestAdd(t *testing.T) {
	m := New()
	for i := int64(1); i <= 3; i++ {
		prev := m.NextID()
		task, err := m.Add("task")
		be.Err(t, err, nil)
		be.Equal(t, task.ID, prev)
		be.Equal(t, m.NextID(), prev+1)
		be.Equal(t, task.ID, i)
	}
	be.Equal(t, m.Count(), 3)
}

func TestAdd_Empty(t *testing.T) {
	m := New()
	mustAdd(t, m, "one")

	_, err := m.Add("")
	be.Err(t, err, ErrInvalidArgument)
	be.Equal(t, m.Count(), 1)
	be.Equal(t, m.NextID(), int64(2))
}

func TestRemove(t *testing.T) {
	m := New()
	mustAdd(t, m, "a", "b", "c")

	be.True(t, m.Remove(2))
	be.Equal(t, m.Count(), 2)
	be.Equal(t, ids(m.All()), []int64{1, 3})

	be.True(t, !m.Remove(2))
	be.Equal(t, m.Count(), 2)

	// ID не переиспользуется после удаления
	task, err := m.Add("d")
	be.Err(t, err, nil)
	be.Equal(t, task.ID, int64(4))
}

func TestComplete(t *testing.T) {
	m := New()
	mustAdd(t, m, "a", "b")

	be.True(t, m.Complete(2))
	task, ok := m.Get(2)
	be.True(t, ok)
	be.True(t, task.Completed)
	be.True(t, !task.CompletedAt.Before(task.CreatedAt))

	before := m.All()
	be.True(t, !m.Complete(42))
	be.Equal(t, m.All(), before)
}

func TestAll_ReturnsCopy(t *testing.T) {
	m := New()
	mustAdd(t, m, "a")

	tasks := m.All()
	tasks[0].Description = "changed"

	task, _ := m.Get(1)
	be.Equal(t, task.Description, "a")
	be.Equal(t, m.Count(), 1)
}

func TestGet_ReturnsCopy(t *testing.T) {
	m := New()
	mustAdd(t, m, "a")

	task, ok := m.Get(1)
	be.True(t, ok)
	task.Description = "changed"

	again, _ := m.Get(1)
	be.Equal(t, again.Description, "a")

	_, ok = m.Get(2)
	be.True(t, !ok)
}

func TestUpdate(t *testing.T) {
	m := New()
	mustAdd(t, m, "a", "b")

	err := m.Update(1, func(t *Task) error { return t.SetDescription("renamed") })
	be.Err(t, err, nil)
	task, _ := m.Get(1)
	be.Equal(t, task.Description, "renamed")

	t.Run("not_found", func(t *testing.T) {
		err := m.Update(10, func(*Task) error { return nil })
		be.Err(t, err, ErrTaskNotFound)
	})

	t.Run("callback_error", func(t *testing.T) {
		errStop := errors.New("stop")
		err := m.Update(1, func(t *Task) error {
			t.Description = "lost"
			return errStop
		})
		be.Err(t, err, errStop)
		task, _ := m.Get(1)
		be.Equal(t, task.Description, "renamed")
	})

	t.Run("invalid_result", func(t *testing.T) {
		err := m.Update(1, func(t *Task) error {
			t.Description = ""
			return nil
		})
		be.Err(t, err, ErrInvalidArgument)
		task, _ := m.Get(1)
		be.Equal(t, task.Description, "renamed")
	})

	t.Run("duplicate_id", func(t *testing.T) {
		err := m.Update(1, func(t *Task) error { return t.SetID(2) })
		be.Err(t, err, ErrDuplicateID)
		be.Equal(t, ids(m.All()), []int64{1, 2})
	})

	t.Run("reassign_id", func(t *testing.T) {
		err := m.Update(1, func(t *Task) error { return t.SetID(10) })
		be.Err(t, err, nil)
		be.Equal(t, ids(m.All()), []int64{10, 2})
		be.Equal(t, m.NextID(), int64(11))
	})
}

func TestClear(t *testing.T) {
	m := New()
	mustAdd(t, m, "a", "b")

	m.Clear()
	be.Equal(t, m.Count(), 0)

	task, err := m.Add("c")
	be.Err(t, err, nil)
	be.Equal(t, task.ID, int64(1))
}

func TestPartitions(t *testing.T) {
	m := New()
	mustAdd(t, m, "a", "b", "c", "d")
	m.Complete(3)
	m.Complete(1)

	be.Equal(t, ids(m.Completed()), []int64{1, 3})
	be.Equal(t, ids(m.Pending()), []int64{2, 4})
}

func TestReplaceAll(t *testing.T) {
	created := time.Unix(100, 0)
	m := New()
	mustAdd(t, m, "old")

	err := m.ReplaceAll([]Task{
		{ID: 5, Description: "five", CreatedAt: created},
		{ID: 2, Description: "two", CreatedAt: created},
	})
	be.Err(t, err, nil)
	be.Equal(t, m.NextID(), int64(6))
	be.Equal(t, ids(m.All()), []int64{5, 2})

	task, err := m.Add("six")
	be.Err(t, err, nil)
	be.Equal(t, task.ID, int64(6))

	be.Err(t, m.ReplaceAll(nil), nil)
	be.Equal(t, m.Count(), 0)
	be.Equal(t, m.NextID(), int64(1))
}

func TestReplaceAll_Rejects(t *testing.T) {
	created := time.Unix(100, 0)
	tests := []struct {
		name  string
		tasks []Task
		want  error
	}{
		{
			name: "duplicate_id",
			tasks: []Task{
				{ID: 1, Description: "a", CreatedAt: created},
				{ID: 1, Description: "b", CreatedAt: created},
			},
			want: ErrDuplicateID,
		},
		{
			name:  "invalid_task",
			tasks: []Task{{ID: -1, Description: "a", CreatedAt: created}},
			want:  ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			mustAdd(t, m, "keep")

			err := m.ReplaceAll(tt.tasks)
			be.Err(t, err, tt.want)
			be.Equal(t, ids(m.All()), []int64{1})
			be.Equal(t, m.NextID(), int64(2))
		})
	}
}

func TestReplaceAll_CopiesInput(t *testing.T) {
	tasks := []Task{{ID: 1, Description: "a", CreatedAt: time.Unix(1, 0)}}
	m := New()
	be.Err(t, m.ReplaceAll(tasks), nil)

	tasks[0].Description = "changed"
	task, _ := m.Get(1)
	be.Equal(t, task.Description, "a")
}
