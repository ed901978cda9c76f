// Package logger is the central log for the emulator. Entries are tagged,
// kept in memory up to a maximum count, and optionally echoed to an
// io.Writer as they arrive.
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. This keeps a polling loop, which logs the same event many thousands
// of times, from pushing everything else out of the log.
package logger

import (
	"io"
)

// only one central log for the entire application.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new log entries to io.Writer. A nil writer stops echoing.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
