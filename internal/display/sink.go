// Package display is the boundary for the human-readable status lines the
// simulation emits. Keeping it behind a small port keeps the domain testable
// without capturing stdout.
package display

// Sink receives an ordered sequence of human-readable status lines.
type Sink interface {
	Println(line string)
}

type nopSink struct{}

func (nopSink) Println(string) {}

// Nop returns a sink that discards all lines. Useful as a safe fallback.
func Nop() Sink { return nopSink{} }
