//go:build !statsview

package statsview

import (
	"io"
)

// DefaultAddress is empty when statistics are not built in.
const DefaultAddress = ""

// Viewer is never created without the statsview build tag.
type Viewer struct{}

// Launch returns nil without the statsview build tag.
func Launch(_ io.Writer, _ string) *Viewer {
	return nil
}

// Stop does nothing.
func (v *Viewer) Stop() {
}

// Available reports whether this build can serve statistics.
func Available() bool {
	return false
}
