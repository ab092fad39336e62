package filestor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"todolist/internal/lineio"
	"todolist/internal/model"
)

// maxLineSize с запасом вмещает строку с описанием длиной model.MaxDescriptionLen,
// даже если все символы в нем экранированы.
const maxLineSize = 1 << 20

type Task = model.Task

var (
	ErrIO          = model.ErrIO
	ErrInit        = model.ErrInit
	ErrDuplicateID = model.ErrDuplicateID
)

// Filestor сохраняет задачи в текстовый файл, по одной задаче на строку.
type Filestor struct {
	path string
	log  *slog.Logger
}

// New создает каталог для файла, если его нет. Ошибка оборачивает ErrInit.
func New(path string) (*Filestor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: task file path is required", ErrInit)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return &Filestor{
		path: path,
		log:  slog.Default().With("file", path),
	}, nil
}

func (s *Filestor) Path() string {
	return s.path
}

func (s *Filestor) Exists() bool {
	_, err := os.Stat(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("stat task file failed", "error", err)
	}
	return err == nil
}

// Save полностью перезаписывает файл. Запись атомарна: данные пишутся
// во временный файл рядом, который затем переименовывается.
func (s *Filestor) Save(tasks []Task) error {
	if err := writeFileAtomic(s.path, 0o644, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, t := range tasks {
			if _, err := bw.WriteString(t.MarshalLine() + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	}); err != nil {
		s.log.Error("save tasks failed", "error", err)
		return fmt.Errorf("%w: save %s: %w", ErrIO, s.path, err)
	}

	s.log.Info("tasks saved", "count", len(tasks))
	return nil
}

// Load читает задачи из файла.
//
// Отсутствующий файл - не ошибка, возвращается пустой список.
// Пустые строки пропускаются. Некорректные строки и строки с уже встречавшимся ID
// пропускаются, а ошибки по ним объединяются в возвращаемую ошибку вместе
// с частичным результатом.
func (s *Filestor) Load() ([]Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Info("no task file found")
			return []Task{}, nil
		}
		s.log.Error("open task file failed", "error", err)
		return []Task{}, fmt.Errorf("%w: open %s: %w", ErrIO, s.path, err)
	}
	defer f.Close()

	tasks, err := s.read(f)
	s.log.Info("tasks loaded", "count", len(tasks))
	return tasks, err
}

func (s *Filestor) read(r io.Reader) ([]Task, error) {
	var (
		tasks = []Task{}
		seen  = make(map[int64]int)
		errs  []error
	)

	lr := lineio.NewReader(r, maxLineSize)
	for lineNo := 1; ; lineNo++ {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, lineio.ErrTooLong) {
			s.log.Warn("skip oversized task entry", "line", lineNo, "limit", maxLineSize)
			errs = append(errs, &model.ParseError{Line: lineNo, Err: err})
			continue
		}
		if err != nil {
			s.log.Error("read task file failed", "error", err)
			errs = append(errs, fmt.Errorf("%w: read %s: %w", ErrIO, s.path, err))
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		task, err := model.ParseLine(line)
		if err != nil {
			if pe, ok := model.AsParseError(err); ok {
				pe.Line = lineNo
			}
			s.log.Warn("skip malformed task entry", "line", lineNo, "error", err)
			errs = append(errs, err)
			continue
		}

		if first, ok := seen[task.ID]; ok {
			err := &model.ParseError{
				Line: lineNo,
				Text: line,
				Err:  fmt.Errorf("%w %d, first seen on line %d", ErrDuplicateID, task.ID, first),
			}
			s.log.Warn("skip duplicate task entry", "line", lineNo, "id", task.ID)
			errs = append(errs, err)
			continue
		}
		seen[task.ID] = lineNo
		tasks = append(tasks, task)
	}

	return tasks, errors.Join(errs...)
}

func writeFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
