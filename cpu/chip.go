package cpu

// Chip is a single 6502-family interpreter. It holds the visible
// programmer-model registers plus the handful of latches needed to model
// RESET/NMI/IRQ/BRK sequencing. Zero value is not usable; construct with
// New and select a Variant with SetVariant before calling Step or Run.
type Chip struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	SR uint8
	SP uint8

	variant Variant
	bus     Bus

	halted       bool
	resetPending bool
	nmiPending   bool
	irqPending   bool
}

// New returns a Chip wired to bus with a RESET latched, so the first Step
// or Run call loads PC from the reset vector before executing anything.
// The caller must still call SetVariant before the chip will run.
func New(bus Bus) *Chip {
	return &Chip{bus: bus, variant: VariantUnimplemented, resetPending: true}
}

// SetVariant selects the instruction set and decimal-mode behavior the
// Chip emulates. It returns InvalidState if v is not one of the defined
// variants.
func (c *Chip) SetVariant(v Variant) error {
	if v <= VariantUnimplemented || v >= variantMax {
		return InvalidState{Reason: "unknown variant"}
	}
	c.variant = v
	return nil
}

// Variant reports the Chip's currently configured variant.
func (c *Chip) Variant() Variant {
	return c.variant
}

// Halted reports whether the Chip has executed a STP (65C02) and will
// refuse further Step calls until Reset is called.
func (c *Chip) Halted() bool {
	return c.halted
}

// Halt stops the Chip immediately, as if it had executed STP. Step and Run
// refuse to continue until Reset is called.
func (c *Chip) Halt() {
	c.halted = true
}

// Reset latches a RESET condition, serviced on the next Step.
func (c *Chip) Reset() {
	c.resetPending = true
	c.halted = false
}

// Irq latches a maskable interrupt request. It is serviced on the next
// Step boundary if the interrupt-disable flag is clear; otherwise it
// remains pending. Devices that keep their interrupt line asserted (e.g.
// via.VIA) must call Irq again on a later tick if the first request was
// masked or already serviced but the condition persists.
func (c *Chip) Irq() {
	c.irqPending = true
}

// Nmi latches a non-maskable interrupt, serviced on the next Step
// boundary regardless of the interrupt-disable flag.
func (c *Chip) Nmi() {
	c.nmiPending = true
}

// Step executes exactly one instruction (or services a pending
// RESET/NMI/IRQ), then ticks the bus once and checks for a newly pending
// interrupt. It returns InvalidState if the variant was never set or the
// Chip is halted.
func (c *Chip) Step() error {
	if c.variant <= VariantUnimplemented || c.variant >= variantMax {
		return InvalidState{Reason: "variant not set"}
	}
	if c.halted {
		return InvalidState{Reason: "chip is halted"}
	}

	if c.resetPending {
		c.resetPending = false
		c.doReset()
		c.bus.Tick()
		return nil
	}

	opcode := c.nextByte()
	entry := opcodeTable[opcode]
	if entry.cmos && c.variant != Wdc65C02 {
		c.execute(INop, AddrImplied, operand{}, 0)
	} else {
		op := c.resolve(entry.mode)
		c.execute(entry.instr, entry.mode, op, entry.bit)
	}

	c.bus.Tick()
	c.serviceInterrupts()
	return nil
}

// Run steps the Chip until it halts or Step returns an error.
func (c *Chip) Run() error {
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chip) doReset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.SR = 0x36
	c.PC = c.readVector(ResetVector)
	c.halted = false
}

// restoreSR applies a status byte popped from the stack (by PLP or RTI),
// per this implementation's documented quirk: bits 4 and 5 are kept from
// the live status register rather than taken from the popped byte.
func (c *Chip) restoreSR(popped uint8) {
	c.SR = (popped &^ (PBreak | PUnused)) | (c.SR & (PBreak | PUnused))
}

func (c *Chip) serviceInterrupts() {
	if c.nmiPending {
		c.nmiPending = false
		c.runInterrupt(NMIVector, false)
		return
	}
	if c.irqPending && !c.getFlag(PInterrupt) {
		c.irqPending = false
		c.runInterrupt(IRQVector, false)
	}
}

// runInterrupt pushes PC and SR and loads PC from vector. isBRK controls
// whether the pushed status byte carries the break flag, distinguishing a
// software BRK from a hardware IRQ/NMI to anything that later inspects the
// stacked flags.
func (c *Chip) runInterrupt(vector uint16, isBRK bool) {
	c.pushAddress(c.PC)
	flags := c.SR | PUnused
	if isBRK {
		flags |= PBreak
	} else {
		flags &^= PBreak
	}
	c.push(flags)
	c.setFlag(PInterrupt, true)
	c.PC = c.readVector(vector)
}

func (c *Chip) readVector(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// nextByte fetches the byte at PC and advances PC.
func (c *Chip) nextByte() uint8 {
	b := c.bus.Read(c.PC)
	c.PC++
	return b
}

// nextAddress fetches a little-endian 16 bit address starting at PC and
// advances PC by two.
func (c *Chip) nextAddress() uint16 {
	lo := c.nextByte()
	hi := c.nextByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *Chip) push(v uint8) {
	c.bus.Write(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *Chip) pop() uint8 {
	c.SP++
	return c.bus.Read(0x0100 + uint16(c.SP))
}

func (c *Chip) pushAddress(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr))
}

func (c *Chip) popAddress() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *Chip) getFlag(mask uint8) bool {
	return c.SR&mask != 0
}

func (c *Chip) setFlag(mask uint8, v bool) {
	if v {
		c.SR |= mask
	} else {
		c.SR &^= mask
	}
}

// setZN sets the Zero and Negative flags from v, the common case for
// every load, transfer and read-modify-write instruction.
func (c *Chip) setZN(v uint8) {
	c.setFlag(PZero, v == 0)
	c.setFlag(PNegative, v&0x80 != 0)
}
