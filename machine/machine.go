// Package machine composes a cpu.Chip with a bus.Bus into a runnable
// system: it satisfies cpu.Bus by delegating to the Bus, advances the VIA's
// timers once per instruction, and raises the CPU's IRQ line whenever any
// registered irq.Sender has a latched, enabled interrupt.
package machine

import (
	"github.com/vaelen/v6502c/bus"
	"github.com/vaelen/v6502c/cpu"
	"github.com/vaelen/v6502c/irq"
)

// TraceFunc is invoked once per executed instruction (after the bus tick,
// before any interrupt is serviced) when set via SetTraceFn. It is handed
// the live Chip, so it must not retain it past the call.
type TraceFunc func(*cpu.Chip)

// Machine owns a Bus and the Chip that drives it.
type Machine struct {
	Bus *bus.Bus
	CPU *cpu.Chip

	irqSources []irq.Sender
	traceFn    TraceFunc
}

// New creates a Machine around b running as variant. b's devices, if any,
// should already be wired before calling New. Every interrupt-capable
// device the bus carries (currently just the VIA) is registered as an
// irq.Sender the Machine polls every Tick; a caller wiring a future
// interrupt-capable device reachable some other way can add it with
// AddIRQSource.
func New(b *bus.Bus, variant cpu.Variant) (*Machine, error) {
	m := &Machine{Bus: b}
	m.CPU = cpu.New(m)
	if err := m.CPU.SetVariant(variant); err != nil {
		return nil, err
	}
	if b.VIA != nil {
		m.AddIRQSource(b.VIA)
	}
	return m, nil
}

// AddIRQSource registers an additional interrupt source polled on every
// Tick, alongside any the Bus already contributed.
func (m *Machine) AddIRQSource(s irq.Sender) {
	m.irqSources = append(m.irqSources, s)
}

// Read implements cpu.Bus.
func (m *Machine) Read(addr uint16) uint8 {
	return m.Bus.Read(addr)
}

// Write implements cpu.Bus.
func (m *Machine) Write(addr uint16, val uint8) {
	m.Bus.Write(addr, val)
}

// Tick implements cpu.Bus: it advances the VIA's timers, forwards an
// interrupt to the CPU if any registered irq.Sender is raised, and finally
// calls the trace hook.
func (m *Machine) Tick() {
	if m.Bus.VIA != nil {
		m.Bus.VIA.Tick()
	}
	for _, s := range m.irqSources {
		if s.Raised() {
			m.CPU.Irq()
		}
	}
	if m.traceFn != nil {
		m.traceFn(m.CPU)
	}
}

// SetTraceFn installs (or, with nil, removes) a per-instruction trace hook.
func (m *Machine) SetTraceFn(fn TraceFunc) {
	m.traceFn = fn
}

// LoadROM copies data into the bus starting at start and write-protects
// that range.
func (m *Machine) LoadROM(data []byte, start uint16) error {
	return m.Bus.LoadROM(data, start)
}

// Step executes one instruction.
func (m *Machine) Step() error {
	return m.CPU.Step()
}

// Run steps until the CPU halts or a Step fails.
func (m *Machine) Run() error {
	return m.CPU.Run()
}

// Halt stops the CPU.
func (m *Machine) Halt() {
	m.CPU.Halt()
}

// Reset latches a CPU reset, serviced on the next Step.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Irq raises a maskable interrupt request directly (in addition to the
// automatic VIA-driven ones serviced by Tick).
func (m *Machine) Irq() {
	m.CPU.Irq()
}

// Nmi raises a non-maskable interrupt request.
func (m *Machine) Nmi() {
	m.CPU.Nmi()
}
