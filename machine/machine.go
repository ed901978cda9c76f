// Package machine ties the CPU, PPU, bus and cartridge together and drives
// them in lockstep: every CPU cycle advances the PPU by three dots.
package machine

import (
	"github.com/meadori/nescore/bus"
	"github.com/meadori/nescore/cartridge"
	"github.com/meadori/nescore/cpu"
	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/mapper"
	"github.com/meadori/nescore/ppu"
)

// ErrNoMachine is returned by Runner.Do when no cartridge is loaded.
const ErrNoMachine = "machine: no cartridge loaded"

var errNoMachine = curated.Errorf(ErrNoMachine)

// DotsPerCycle is the number of PPU dots per CPU cycle.
const DotsPerCycle = 3

// powerOnCycles is the length of the reset sequence run at power on.
const powerOnCycles = 7

// DMA transfers stall the CPU for this many cycles, plus one when started on
// an odd cycle.
const dmaCycles = 513

// Machine is the root of the emulation.
type Machine struct {
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	Bus   *bus.Bus
	Cart  *cartridge.Cartridge
	Frame *ppu.Frame

	cycles uint64

	// the error that stopped the machine, if any
	halted error
}

// New creates a machine for the cartridge and powers it on. Completed frames
// are published to frame, which may be shared with a presentation layer. A
// new frame is created when frame is nil.
func New(cart *cartridge.Cartridge, frame *ppu.Frame) *Machine {
	if frame == nil {
		frame = ppu.NewFrame()
	}

	m := &Machine{
		Cart:  cart,
		Frame: frame,
		CPU:   cpu.New(),
		PPU:   ppu.New(frame),
	}
	m.PPU.ConnectMapper(cart.Mapper)
	m.Bus = bus.New(m.PPU, cart.Mapper)
	m.CPU.ConnectBus(m.Bus)

	m.CPU.PowerOn()
	m.advance(powerOnCycles)

	logger.Logf("machine", "power on: PC=%04X", m.CPU.PC)
	return m
}

// Reset presses the console's reset button.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.PPU.Reset()
	m.halted = nil
	m.advance(powerOnCycles)
	logger.Logf("machine", "reset: PC=%04X", m.CPU.PC)
}

// Cycles returns the number of CPU cycles executed since power on.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Halted returns the error that stopped the machine, or nil.
func (m *Machine) Halted() error {
	return m.halted
}

// Peek reads CPU address space without side effects.
func (m *Machine) Peek(addr uint16) byte {
	return m.Bus.Peek(addr)
}

// Next decodes the instruction at the program counter without executing it.
func (m *Machine) Next() cpu.Instruction {
	return cpu.Decode(m.Bus, m.CPU.PC)
}

// Step executes one instruction, or services one pending interrupt, and
// advances the PPU to match. It returns the number of CPU cycles taken.
//
// If execution reaches behaviour that is not modelled the machine halts and
// the error is returned. All further calls return the same error.
func (m *Machine) Step() (cycles int, err error) {
	if m.halted != nil {
		return 0, m.halted
	}

	defer func() {
		if r := recover(); r != nil {
			err = curated.RecoverUnimplemented(r)
			m.halted = err
			cycles = 0
			logger.Logf("machine", "halted: %v", err)
		}
	}()

	cycles = m.CPU.ServiceInterrupt()
	if cycles == 0 {
		cycles = m.CPU.Execute(m.CPU.Fetch())
	}

	if m.Bus.TakeDMA() {
		stall := dmaCycles
		if (m.cycles+uint64(cycles))%2 == 1 {
			stall++
		}
		cycles += stall
	}

	m.advance(cycles)

	return cycles, nil
}

// advance runs the PPU for the given number of CPU cycles and forwards its
// interrupts to the CPU.
func (m *Machine) advance(cycles int) {
	for i := 0; i < cycles*DotsPerCycle; i++ {
		m.PPU.Step()
		if m.PPU.PollNMI() {
			m.CPU.TriggerNMI()
		}
	}
	if irq, ok := m.Cart.Mapper.(mapper.Interrupter); ok {
		m.CPU.SetIRQ(irq.IRQ())
	}
	m.cycles += uint64(cycles)
}

// Observer is called with the machine before each instruction is executed.
// An error from the observer stops the run and is returned.
type Observer func(m *Machine) error

// RunFrame steps until the PPU starts a new frame.
func (m *Machine) RunFrame() error {
	return m.RunFrameObserved(nil)
}

// RunFrameObserved is RunFrame with obs called before every step. A nil obs
// is allowed.
func (m *Machine) RunFrameObserved(obs Observer) error {
	_, _, frame := m.PPU.Position()
	for {
		if obs != nil {
			if err := obs(m); err != nil {
				return err
			}
		}
		if _, err := m.Step(); err != nil {
			return err
		}
		if _, _, f := m.PPU.Position(); f != frame {
			return nil
		}
	}
}

// Run executes n instructions.
func (m *Machine) Run(n int) error {
	for i := 0; i < n; i++ {
		if _, err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
