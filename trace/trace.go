package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/meadori/nescore/cpu"
	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/machine"
)

// Error patterns returned by Run and Compare.
const (
	ErrMismatch = "trace: mismatch at line %d\n ours: %s\n  ref: %s"
	ErrHalted   = "trace: halted after line %d: %v"
	ErrRead     = "trace: reference log: %v"
)

// Flags formats the status register with one letter per bit, highest bit
// first. Set flags are upper case. The unused bit is always shown as 'u'.
func Flags(p cpu.Status) string {
	const letters = "nvubdizc"

	b := []byte(letters)
	for i := range b {
		if i == 2 {
			continue
		}
		if p.Has(cpu.Status(1 << (7 - i))) {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// Line formats the state of the machine before the instruction at the program
// counter executes.
func Line(m *machine.Machine) string {
	r := m.CPU.Registers
	in := m.Next()
	_, _, frame := m.PPU.Position()

	var bytes strings.Builder
	for i, b := range in.Bytes() {
		if i > 0 {
			bytes.WriteByte(' ')
		}
		fmt.Fprintf(&bytes, "%02X", b)
	}

	return fmt.Sprintf("f%-5d c%-10d A:%02X X:%02X Y:%02X S:%02X %s %s$%04X: %-9s%s",
		frame, m.Cycles(), r.A, r.X, r.Y, r.SP, Flags(r.P),
		strings.Repeat(" ", int(0xFF-r.SP)),
		r.PC, bytes.String(), Disassemble(m.Bus, r, in))
}

// Observer returns a machine observer that writes a line to w for every
// instruction.
func Observer(w io.Writer) machine.Observer {
	return func(m *machine.Machine) error {
		_, err := fmt.Fprintln(w, Line(m))
		return err
	}
}

// Run writes a line for each of the next n instructions to w, stepping the
// machine after each one. A negative n runs until the machine halts.
func Run(m *machine.Machine, w io.Writer, n int) error {
	obs := Observer(w)
	for i := 0; n < 0 || i < n; i++ {
		if err := obs(m); err != nil {
			return err
		}
		if _, err := m.Step(); err != nil {
			return curated.Errorf(ErrHalted, i+1, err)
		}
	}
	return nil
}

// Compare steps the machine once for every line of the reference log and
// returns an error for the first line that does not match. The number of
// matching lines is returned in all cases.
func Compare(m *machine.Machine, ref io.Reader) (int, error) {
	scanner := bufio.NewScanner(ref)

	n := 0
	for scanner.Scan() {
		want := strings.TrimRight(scanner.Text(), "\r")
		ours := Line(m)
		if ours != want {
			return n, curated.Errorf(ErrMismatch, n+1, ours, want)
		}
		n++
		if _, err := m.Step(); err != nil {
			return n, curated.Errorf(ErrHalted, n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return n, curated.Errorf(ErrRead, err)
	}
	return n, nil
}
