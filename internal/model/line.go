package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	fieldSep    = '|'
	escapeChar  = '\\'
	fieldsCount = 5
)

// MarshalLine кодирует задачу в одну строку файла:
//
//	<id>|<description>|<0|1>|<createdAt>|<completedAt>
//
// Время записывается в секундах unix-времени. Для completedAt 0 означает,
// что задача не выполнена; createdAt, равный 0, - это обычная метка 1970-01-01.
// Символы '|', '\' и переводы строк в описании экранируются.
func (t Task) MarshalLine() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(t.ID, 10))
	sb.WriteByte(fieldSep)
	sb.WriteString(escapeField(t.Description))
	sb.WriteByte(fieldSep)
	if t.Completed {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	sb.WriteByte(fieldSep)
	sb.WriteString(strconv.FormatInt(t.CreatedAt.Unix(), 10))
	sb.WriteByte(fieldSep)
	sb.WriteString(strconv.FormatInt(unixOrZero(t.CompletedAt), 10))
	return sb.String()
}

// ParseLine разбирает строку, полученную от MarshalLine.
// Лишние поля в конце строки игнорируются.
func ParseLine(line string) (Task, error) {
	fields := splitFields(line)
	if len(fields) < fieldsCount {
		return Task{}, &ParseError{Text: line, Err: fmt.Errorf("want %d fields, got %d", fieldsCount, len(fields))}
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Task{}, &ParseError{Text: line, Err: fmt.Errorf("id: %w", err)}
	}

	var completed bool
	switch fields[2] {
	case "0":
	case "1":
		completed = true
	default:
		return Task{}, &ParseError{Text: line, Err: fmt.Errorf("completed flag must be 0 or 1, got %q", fields[2])}
	}

	created, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Task{}, &ParseError{Text: line, Err: fmt.Errorf("created at: %w", err)}
	}
	completedAt, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return Task{}, &ParseError{Text: line, Err: fmt.Errorf("completed at: %w", err)}
	}

	t := Task{
		ID:          id,
		Description: fields[1],
		Completed:   completed,
		CreatedAt:   time.Unix(created, 0),
		CompletedAt: timeOrZero(completedAt),
	}
	if err := t.Validate(); err != nil {
		return Task{}, &ParseError{Text: line, Err: err}
	}
	return t, nil
}

// AsParseError возвращает *ParseError из цепочки ошибок.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	ok := errors.As(err, &pe)
	return pe, ok
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, "|\\\n\r") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case fieldSep, escapeChar:
			sb.WriteByte(escapeChar)
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// splitFields делит строку по неэкранированным '|' и снимает экранирование.
// Неизвестная escape-последовательность сохраняется как есть.
func splitFields(line string) []string {
	var (
		fields []string
		sb     strings.Builder
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == escapeChar && i+1 < len(line):
			i++
			switch next := line[i]; next {
			case fieldSep, escapeChar:
				sb.WriteByte(next)
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
		case c == fieldSep:
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	return append(fields, sb.String())
}

func unixOrZero(ts time.Time) int64 {
	if ts.IsZero() {
		return 0
	}
	return ts.Unix()
}

func timeOrZero(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
