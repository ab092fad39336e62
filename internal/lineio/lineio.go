package lineio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var ErrTooLong = errors.New("line too long")

// Reader читает строки, завершенные '\n', длиной не более max байт.
// Слишком длинная строка вычитывается целиком и пропускается,
// поэтому следующий вызов ReadLine вернет уже следующую строку.
type Reader struct {
	r   *bufio.Reader
	max int
}

func NewReader(r io.Reader, max int) *Reader {
	return &Reader{r: bufio.NewReader(r), max: max}
}

// ReadLine возвращает строку без завершающих "\n" или "\r\n".
// Для слишком длинной строки возвращается ErrTooLong, в конце ввода - io.EOF.
func (lr *Reader) ReadLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
		read    bool
	)
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
			if !tooLong {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case err == nil, errors.Is(err, io.EOF) && read:
			if tooLong {
				return "", ErrTooLong
			}
			line := strings.TrimSuffix(string(buf), "\n")
			line = strings.TrimSuffix(line, "\r")
			if len(line) > lr.max {
				return "", ErrTooLong
			}
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			// в buf еще нет '\n', так что его длина - это длина строки
			if len(buf) > lr.max+1 {
				tooLong = true
				buf = nil
			}
		default:
			return "", err
		}
	}
}
