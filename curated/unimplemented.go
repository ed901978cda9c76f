package curated

// Unimplemented stops emulation by panicking with a curated error flagged as
// a coverage gap. Emulation must never carry on with a guessed result when it
// reaches an undocumented opcode, an unsupported banking mode or an
// unmodelled IO register.
//
// The panic is recovered by the machine's step function and nowhere else.
func Unimplemented(pattern string, values ...interface{}) {
	panic(&curated{
		pattern: pattern,
		values:  values,
		gap:     true,
	})
}

// IsUnimplemented returns true if err, or an error it wraps, was raised by
// Unimplemented().
func IsUnimplemented(err error) bool {
	return walk(err, func(er *curated) bool {
		return er.gap
	})
}

// RecoverUnimplemented converts a recovered panic value into an error if it
// was raised by Unimplemented(). Any other value is re-raised.
func RecoverUnimplemented(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok && IsUnimplemented(err) {
		return err
	}
	panic(r)
}
