package machine

import (
	"sync"

	"github.com/meadori/nescore/logger"
)

// Runner drives a machine one frame at a time from the presentation loop,
// while other goroutines pause it, step it and inspect it.
//
// The machine is only ever touched with the runner's lock held. Frames
// published to the shared ppu.Frame can be read at any time.
type Runner struct {
	mu       sync.Mutex
	m        *Machine
	paused   bool
	observer Observer
}

// NewRunner returns a runner for m. The runner starts unpaused.
func NewRunner(m *Machine) *Runner {
	return &Runner{m: m}
}

// Frame runs the machine until the next frame starts, unless it is paused or
// halted. A halted machine returns its error.
func (r *Runner) Frame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.m == nil {
		return nil
	}
	if err := r.m.Halted(); err != nil {
		return err
	}
	if r.paused {
		return nil
	}
	return r.m.RunFrameObserved(r.observer)
}

// SetObserver installs obs to be called before every instruction run by
// Frame. Instructions run through Do are not observed. A nil obs removes the
// observer.
func (r *Runner) SetObserver(obs Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = obs
}

// SetPaused stops or restarts frame execution.
func (r *Runner) SetPaused(paused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paused != paused {
		logger.Logf("runner", "paused: %v", paused)
	}
	r.paused = paused
}

// Paused reports whether frame execution is stopped.
func (r *Runner) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// Do calls fn with exclusive access to the machine. It returns ErrNoMachine
// if no machine is loaded.
func (r *Runner) Do(fn func(m *Machine) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.m == nil {
		return errNoMachine
	}
	return fn(r.m)
}

// Swap replaces the machine, for example after a new cartridge is loaded.
func (r *Runner) Swap(m *Machine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = m
	logger.Log("runner", "machine replaced")
}

// Loaded reports whether the runner has a machine.
func (r *Runner) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m != nil
}

// State is what a runner is doing.
type State int

// List of runner states.
const (
	Empty State = iota
	Running
	Paused
	Halted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "NO CARTRIDGE"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	case Halted:
		return "HALTED"
	}
	return "?"
}

// State returns the current state of the runner. A halted machine reports
// Halted even when paused.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.m == nil:
		return Empty
	case r.m.Halted() != nil:
		return Halted
	case r.paused:
		return Paused
	}
	return Running
}
