package controller

import (
	"strings"
	"sync/atomic"
)

// Button identifies one of the eight buttons of a standard controller, in
// the order the shift register reports them.
type Button int

// List of buttons.
const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

var buttonNames = [...]string{"A", "B", "SELECT", "START", "UP", "DOWN", "LEFT", "RIGHT"}

func (b Button) String() string {
	if b >= 0 && int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "?"
}

// ParseButton converts a button name, in any case, to a Button.
func ParseButton(name string) (Button, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// Controller represents a standard NES controller.
//
// Button state is set by the presentation or remote-control goroutine and
// read by the emulation goroutine, so it is held in an atomic bitmask.
type Controller struct {
	buttons atomic.Uint32

	index  byte // The current bit being read from the shift register
	strobe byte // The strobe latch
}

// New creates a new Controller instance.
func New() *Controller {
	return &Controller{}
}

// SetButtons updates the state of the controller's buttons.
func (c *Controller) SetButtons(buttons [8]bool) {
	var mask uint32
	for i, pressed := range buttons {
		if pressed {
			mask |= 1 << uint(i)
		}
	}
	c.buttons.Store(mask)
}

// Buttons returns the current button state.
func (c *Controller) Buttons() [8]bool {
	var buttons [8]bool
	mask := c.buttons.Load()
	for i := range buttons {
		buttons[i] = mask&(1<<uint(i)) != 0
	}
	return buttons
}

// Write handles CPU writes to the controller register ($4016).
func (c *Controller) Write(data byte) {
	c.strobe = data & 1
	if c.strobe == 1 {
		c.index = 0 // Strobe high, reset the read index
	}
}

// Read handles CPU reads from the controller register.
func (c *Controller) Read() byte {
	value := c.Peek()

	// If strobe is low, the shift register is advanced on each read.
	if c.strobe == 0 && c.index < 8 {
		c.index++
	}

	return value
}

// Peek returns the bit the next Read will return without shifting.
func (c *Controller) Peek() byte {
	if c.index >= 8 {
		return 1 // After the 8 main buttons, standard controllers return 1.
	}
	return byte(c.buttons.Load()>>c.index) & 1
}
