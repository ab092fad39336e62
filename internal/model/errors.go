package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrParse           = errors.New("malformed task record")
	ErrIO              = errors.New("task file i/o failed")
	ErrInit            = errors.New("storage initialization failed")
	ErrTaskNotFound    = errors.New("task not found")
	ErrDuplicateID     = errors.New("duplicate task id")
)

// ParseError описывает строку, которую не удалось разобрать.
// Line - номер строки в файле (0, если неизвестен).
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", e.Line, ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
