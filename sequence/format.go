package sequence

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var _ io.WriterTo = (*Sequence[int])(nil)

// String renders the sequence as "size: N | e1 e2 ... eN". Elements are
// formatted with %v.
func (s *Sequence[T]) String() string {
	var b strings.Builder

	b.WriteString("size: ")
	b.WriteString(strconv.Itoa(len(s.items)))
	b.WriteString(" |")

	for _, item := range s.items {
		b.WriteByte(' ')
		fmt.Fprint(&b, item)
	}

	return b.String()
}

// WriteTo writes String() followed by a newline to w.
func (s *Sequence[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String()+"\n")

	return int64(n), err
}
