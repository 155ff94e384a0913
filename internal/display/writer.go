package display

import (
	"fmt"
	"io"
)

type writerSink struct{ w io.Writer }

// NewWriterSink emits each line to w, typically os.Stdout.
func NewWriterSink(w io.Writer) Sink { return &writerSink{w: w} }

func (s *writerSink) Println(line string) {
	fmt.Fprintln(s.w, line)
}
