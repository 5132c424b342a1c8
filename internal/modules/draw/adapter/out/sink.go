package out

import (
	"fmt"
	"io"

	drawout "numdraw/internal/modules/draw/port/out"
)

// WriterSink prints each ball on its own line; Reset prints the placeholder.
type WriterSink struct {
	w           io.Writer
	placeholder string
}

func NewWriterSink(w io.Writer, placeholder string) drawout.Sink {
	return &WriterSink{w: w, placeholder: placeholder}
}

func (s *WriterSink) Append(value, stagger int) {
	_, _ = fmt.Fprintf(s.w, "(%2d) #%d\n", value, stagger+1)
}

func (s *WriterSink) Reset() {
	if s.placeholder == "" {
		return
	}
	_, _ = fmt.Fprintln(s.w, s.placeholder)
}

type NopSink struct{}

func (NopSink) Append(int, int) {}
func (NopSink) Reset()          {}
