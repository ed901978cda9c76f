package controller

import (
	"fmt"
	"io"
	"strings"
)

// FormatButtons names the pressed buttons joined with '+', or NONE.
//
//	A+RIGHT
func FormatButtons(b [8]bool) string {
	var names []string
	for i, pressed := range b {
		if pressed {
			names = append(names, Button(i).String())
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "+")
}

// ParseButtons is the inverse of FormatButtons. Names are case insensitive.
func ParseButtons(s string) ([8]bool, bool) {
	var b [8]bool
	if strings.EqualFold(s, "NONE") {
		return b, true
	}
	for _, name := range strings.Split(s, "+") {
		btn, ok := ParseButton(name)
		if !ok {
			return b, false
		}
		b[btn] = true
	}
	return b, true
}

// Recorder writes controller states in the input script format: one line
// for each change, giving the number of frames the buttons were held.
//
//	120 NONE
//	3 A+RIGHT
type Recorder struct {
	out   io.Writer
	last  [8]bool
	count int
}

// NewRecorder returns a recorder writing to out.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Frame records the buttons held for one frame.
func (r *Recorder) Frame(buttons [8]bool) {
	if r.count > 0 && buttons == r.last {
		r.count++
		return
	}
	r.Flush()
	r.last = buttons
	r.count = 1
}

// Flush writes the pending line.
func (r *Recorder) Flush() {
	if r.count == 0 {
		return
	}
	fmt.Fprintf(r.out, "%d %s\n", r.count, FormatButtons(r.last))
	r.count = 0
}
