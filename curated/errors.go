// Package curated provides errors that keep the pattern they were created
// from, so that callers can recognise a failure with Is() or Has() instead of
// matching on the formatted message.
//
// A curated error wraps every error among its values. The standard errors
// package can therefore walk a chain of curated errors, and errors.Is treats
// two curated errors as the same when they have the same pattern and
// message.
//
// The package also provides the panic used when the emulation reaches
// hardware behaviour that is not modelled. See Unimplemented().
package curated

import (
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}

	// raised by Unimplemented()
	gap bool
}

// Errorf creates a new curated error. The first argument is named pattern
// rather than format because it is the value compared by Is() and Has().
func Errorf(pattern string, values ...interface{}) error {
	return &curated{
		pattern: pattern,
		values:  values,
	}
}

// Error formats the message. When a wrapped message starts with the same
// prefix as the wrapper, as in "cartridge: cartridge: bad header", the prefix
// is kept once.
func (er *curated) Error() string {
	msg := fmt.Sprintf(er.pattern, er.values...)

	head, rest, ok := strings.Cut(msg, ": ")
	if ok && (rest == head || strings.HasPrefix(rest, head+": ")) {
		return rest
	}
	return msg
}

// Unwrap returns the errors among the values.
func (er *curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// Is implements the errors.Is() comparison.
func (er *curated) Is(target error) bool {
	t, ok := target.(*curated)
	if !ok {
		return false
	}
	return er == t || (er.pattern == t.pattern && er.Error() == t.Error())
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(*curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern. Wrapped
// errors are not considered. See Has().
func Is(err error, pattern string) bool {
	er, ok := err.(*curated)
	return ok && er.pattern == pattern
}

// Has checks if error, or any error it wraps, is a curated error with a
// specific pattern. Errors wrapped with fmt.Errorf("%w") are followed too.
func Has(err error, pattern string) bool {
	return walk(err, func(er *curated) bool {
		return er.pattern == pattern
	})
}

// walk calls match for every curated error in the tree rooted at err and
// returns true as soon as match does.
func walk(err error, match func(*curated) bool) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(*curated); ok && match(er) {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if walk(e, match) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), match)
	}
	return false
}
