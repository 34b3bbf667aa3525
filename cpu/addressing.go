package cpu

// AddressingMode identifies how an opcode's operand is fetched.
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrZeroPageIndirect // 65C02: (zp)
	AddrIndirectX        // (zp,X)
	AddrIndirectY        // (zp),Y
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrIndirect                // JMP (abs)
	AddrAbsoluteIndexedIndirect // 65C02: JMP (abs,X)
	AddrRelative
)

// operand is the result of resolving an addressing mode: the effective
// address (when the mode targets memory) and/or the fetched operand byte
// (for read-only modes). Store instructions ignore val and write directly
// to addr.
type operand struct {
	addr uint16
	val  uint8
}

// resolve consumes the operand bytes for mode from the instruction stream
// and computes the effective address and/or value, per the fetch contract
// in the spec. It does not perform the extra read needed by read-modify-
// write or load instructions against addr; callers do that themselves so
// that store instructions can skip the pre-fetch.
func (c *Chip) resolve(mode AddressingMode) operand {
	switch mode {
	case AddrImplied, AddrAccumulator:
		return operand{}
	case AddrImmediate:
		v := c.nextByte()
		return operand{val: v}
	case AddrZeroPage:
		return operand{addr: uint16(c.nextByte())}
	case AddrZeroPageX:
		zp := c.nextByte()
		return operand{addr: uint16(zp+c.X) & 0xFF}
	case AddrZeroPageY:
		zp := c.nextByte()
		return operand{addr: uint16(zp+c.Y) & 0xFF}
	case AddrZeroPageIndirect:
		zp := c.nextByte()
		return operand{addr: c.readZPPointer(zp)}
	case AddrIndirectX:
		zp := c.nextByte()
		ptr := zp + c.X
		lo := c.bus.Read(uint16(ptr & 0xFF))
		hi := c.bus.Read(uint16((ptr + 1) & 0xFF))
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case AddrIndirectY:
		zp := c.nextByte()
		base := c.readZPPointer(zp)
		return operand{addr: base + uint16(c.Y)}
	case AddrAbsolute:
		return operand{addr: c.nextAddress()}
	case AddrAbsoluteX:
		return operand{addr: c.nextAddress() + uint16(c.X)}
	case AddrAbsoluteY:
		return operand{addr: c.nextAddress() + uint16(c.Y)}
	case AddrIndirect:
		ptr := c.nextAddress()
		lo := c.bus.Read(ptr)
		hi := c.bus.Read(ptr + 1)
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case AddrAbsoluteIndexedIndirect:
		ptr := c.nextAddress() + uint16(c.X)
		lo := c.bus.Read(ptr)
		hi := c.bus.Read(ptr + 1)
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case AddrRelative:
		v := c.nextByte()
		return operand{val: v}
	case AddrZeroPageRelative:
		zp := c.nextByte()
		disp := c.nextByte()
		return operand{addr: uint16(zp), val: disp}
	}
	return operand{}
}

// readZPPointer reads a 16 bit pointer stored at zp/zp+1, wrapping within
// the zero page.
func (c *Chip) readZPPointer(zp uint8) uint16 {
	lo := c.bus.Read(uint16(zp))
	hi := c.bus.Read(uint16(zp+1) & 0xFF)
	return uint16(hi)<<8 | uint16(lo)
}

// load reads the operand byte for a read or read-modify-write instruction:
// the immediate/relative value if already fetched, or the byte at addr
// otherwise.
func (c *Chip) load(mode AddressingMode, op operand) uint8 {
	switch mode {
	case AddrAccumulator:
		return c.A
	case AddrImmediate, AddrRelative:
		return op.val
	default:
		return c.bus.Read(op.addr)
	}
}

// store writes v back for the given addressing mode, either to the
// accumulator or to the resolved effective address.
func (c *Chip) store(mode AddressingMode, op operand, v uint8) {
	if mode == AddrAccumulator {
		c.A = v
		return
	}
	c.bus.Write(op.addr, v)
}
