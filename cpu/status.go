package cpu

import "strings"

// Status is the processor status register. Bit positions follow the 6502
// layout so that the value can be pushed and pulled as a raw byte.
type Status byte

// Status flag bits.
const (
	FlagCarry     Status = 1 << 0
	FlagZero      Status = 1 << 1
	FlagInterrupt Status = 1 << 2
	FlagDecimal   Status = 1 << 3
	FlagBreak     Status = 1 << 4
	FlagUnused    Status = 1 << 5
	FlagOverflow  Status = 1 << 6
	FlagNegative  Status = 1 << 7
)

// Has reports whether every bit in f is set.
func (s Status) Has(f Status) bool {
	return s&f == f
}

// Set sets or clears the bits in f. The unused bit is always kept set.
func (s *Status) Set(f Status, v bool) {
	if v {
		*s |= f
	} else {
		*s &^= f
	}
	*s |= FlagUnused
}

func (s Status) Carry() bool     { return s.Has(FlagCarry) }
func (s Status) Zero() bool      { return s.Has(FlagZero) }
func (s Status) Interrupt() bool { return s.Has(FlagInterrupt) }
func (s Status) Decimal() bool   { return s.Has(FlagDecimal) }
func (s Status) Break() bool     { return s.Has(FlagBreak) }
func (s Status) Overflow() bool  { return s.Has(FlagOverflow) }
func (s Status) Negative() bool  { return s.Has(FlagNegative) }

// Pushed returns the byte written to the stack. PHP and BRK push with the
// break bit set; hardware interrupts push it clear.
func (s Status) Pushed(brk bool) byte {
	v := s | FlagUnused
	if brk {
		v |= FlagBreak
	} else {
		v &^= FlagBreak
	}
	return byte(v)
}

// Pulled converts a byte taken from the stack back into a status register.
func Pulled(b byte) Status {
	return Status(b) | FlagUnused
}

// String returns the flags in NV-BDIZC order, upper case when set.
func (s Status) String() string {
	var b strings.Builder
	const labels = "CZIDBUVN"
	for i := 7; i >= 0; i-- {
		c := labels[i]
		if i == 5 {
			b.WriteByte('-')
			continue
		}
		if s&(1<<uint(i)) == 0 {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
