package display

// Recorder retains every emitted line, in order. Intended for tests that
// assert on exact output sequences.
type Recorder struct {
	lines []string
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Println(line string) {
	r.lines = append(r.lines, line)
}

// Lines returns a copy of everything emitted so far.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Reset discards all recorded lines.
func (r *Recorder) Reset() {
	r.lines = nil
}
