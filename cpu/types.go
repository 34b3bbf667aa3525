// Package cpu implements fetch/decode/execute for the NMOS 6502 base
// instruction set plus the documented 65C02 additions, including status
// flag semantics, BCD arithmetic and the RESET/NMI/IRQ/BRK interrupt
// model. The interpreter is instruction-stepped, not cycle-accurate: each
// Step executes one full instruction's worth of bus traffic before
// returning.
package cpu

import "fmt"

// Variant selects which documented instruction set and decimal-mode
// overflow behavior the Chip emulates.
type Variant int

const (
	VariantUnimplemented Variant = iota // Start of valid variant enumerations.
	Nmos6502                            // Base NMOS 6502. Undocumented opcodes decode as NOP.
	Wdc65C02                            // WDC 65C02 with its documented additions.
	variantMax                          // End of variant enumerations.
)

func (v Variant) String() string {
	switch v {
	case Nmos6502:
		return "NMOS6502"
	case Wdc65C02:
		return "WDC65C02"
	default:
		return "UNKNOWN"
	}
}

// Status register bit masks.
const (
	PCarry     = uint8(0x01)
	PZero      = uint8(0x02)
	PInterrupt = uint8(0x04)
	PDecimal   = uint8(0x08)
	PBreak     = uint8(0x10)
	PUnused    = uint8(0x20) // Always reads as 1; has no execution effect.
	POverflow  = uint8(0x40)
	PNegative  = uint8(0x80)
)

// Interrupt and reset vector addresses.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// Bus is the capability the interpreter needs from its host in order to
// run: synchronous byte-wide memory access and a per-instruction tick used
// to advance devices and any trace observer. It is satisfied by
// machine.Machine.
type Bus interface {
	// Read returns the byte at addr. Pure with respect to RAM; device
	// windows may have read side effects (e.g. consuming a received
	// serial byte).
	Read(addr uint16) uint8
	// Write stores val at addr. May be a no-op for protected addresses.
	Write(addr uint16, val uint8)
	// Tick is invoked exactly once after each executed instruction.
	Tick()
}

// InvalidState reports a CPU usage error: an unknown or unset variant, or a
// Step on a halted Chip.
type InvalidState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}
