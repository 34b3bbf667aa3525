package cpu

// execute performs one decoded instruction's effect on the Chip. mode and
// op are the addressing mode already resolved by Chip.resolve; bit carries
// the bit number for the 65C02 RMB/SMB/BBR/BBS family.
func (c *Chip) execute(instr Instruction, mode AddressingMode, op operand, bit uint8) {
	switch instr {
	case INop:
		// Nothing to do, including for the undocumented NMOS opcodes that
		// fall back here.

	case IAdc:
		c.adc(c.load(mode, op))
	case ISbc:
		c.sbc(c.load(mode, op))

	case IAnd:
		c.A &= c.load(mode, op)
		c.setZN(c.A)
	case IOra:
		c.A |= c.load(mode, op)
		c.setZN(c.A)
	case IEor:
		c.A ^= c.load(mode, op)
		c.setZN(c.A)

	case IAsl:
		v := c.load(mode, op)
		c.setFlag(PCarry, v&0x80 != 0)
		r := v << 1
		c.setZN(r)
		c.store(mode, op, r)
	case ILsr:
		v := c.load(mode, op)
		c.setFlag(PCarry, v&0x01 != 0)
		r := v >> 1
		c.setZN(r)
		c.store(mode, op, r)
	case IRol:
		v := c.load(mode, op)
		carryIn := uint8(0)
		if c.getFlag(PCarry) {
			carryIn = 1
		}
		c.setFlag(PCarry, v&0x80 != 0)
		r := (v << 1) | carryIn
		c.setZN(r)
		c.store(mode, op, r)
	case IRor:
		v := c.load(mode, op)
		carryIn := uint8(0)
		if c.getFlag(PCarry) {
			carryIn = 0x80
		}
		c.setFlag(PCarry, v&0x01 != 0)
		r := (v >> 1) | carryIn
		c.setZN(r)
		c.store(mode, op, r)

	case IInc:
		r := c.load(mode, op) + 1
		c.setZN(r)
		c.store(mode, op, r)
	case IDec:
		r := c.load(mode, op) - 1
		c.setZN(r)
		c.store(mode, op, r)
	case IInx:
		c.X++
		c.setZN(c.X)
	case IDex:
		c.X--
		c.setZN(c.X)
	case IIny:
		c.Y++
		c.setZN(c.Y)
	case IDey:
		c.Y--
		c.setZN(c.Y)

	case ICmp:
		c.compare(c.A, c.load(mode, op))
	case ICpx:
		c.compare(c.X, c.load(mode, op))
	case ICpy:
		c.compare(c.Y, c.load(mode, op))

	case IBit:
		v := c.load(mode, op)
		c.setFlag(PZero, c.A&v == 0)
		if mode != AddrImmediate {
			c.setFlag(PNegative, v&0x80 != 0)
			c.setFlag(POverflow, v&0x40 != 0)
		}

	case ITrb:
		v := c.bus.Read(op.addr)
		c.setFlag(PZero, c.A&v == 0)
		c.bus.Write(op.addr, v&^c.A)
	case ITsb:
		v := c.bus.Read(op.addr)
		c.setFlag(PZero, c.A&v == 0)
		c.bus.Write(op.addr, v|c.A)
	case IRmb:
		v := c.bus.Read(op.addr)
		c.bus.Write(op.addr, v&^(1<<bit))
	case ISmb:
		v := c.bus.Read(op.addr)
		c.bus.Write(op.addr, v|(1<<bit))
	case IBbr:
		v := c.bus.Read(op.addr)
		c.branch(v&(1<<bit) == 0, op.val)
	case IBbs:
		v := c.bus.Read(op.addr)
		c.branch(v&(1<<bit) != 0, op.val)

	case IBcc:
		c.branch(!c.getFlag(PCarry), op.val)
	case IBcs:
		c.branch(c.getFlag(PCarry), op.val)
	case IBeq:
		c.branch(c.getFlag(PZero), op.val)
	case IBne:
		c.branch(!c.getFlag(PZero), op.val)
	case IBmi:
		c.branch(c.getFlag(PNegative), op.val)
	case IBpl:
		c.branch(!c.getFlag(PNegative), op.val)
	case IBvc:
		c.branch(!c.getFlag(POverflow), op.val)
	case IBvs:
		c.branch(c.getFlag(POverflow), op.val)
	case IBra:
		c.branch(true, op.val)

	case IJmp:
		c.PC = op.addr
	case IJsr:
		c.pushAddress(c.PC - 1)
		c.PC = op.addr
	case IRts:
		c.PC = c.popAddress() + 1
	case IBrk:
		c.nextByte() // Signature byte after the opcode is skipped, not executed.
		c.runInterrupt(IRQVector, true)
	case IRti:
		c.restoreSR(c.pop())
		c.PC = c.popAddress()

	case IClc:
		c.setFlag(PCarry, false)
	case ISec:
		c.setFlag(PCarry, true)
	case ICli:
		c.setFlag(PInterrupt, false)
	case ISei:
		c.setFlag(PInterrupt, true)
	case ICld:
		c.setFlag(PDecimal, false)
	case ISed:
		c.setFlag(PDecimal, true)
	case IClv:
		c.setFlag(POverflow, false)

	case ILda:
		c.A = c.load(mode, op)
		c.setZN(c.A)
	case ILdx:
		c.X = c.load(mode, op)
		c.setZN(c.X)
	case ILdy:
		c.Y = c.load(mode, op)
		c.setZN(c.Y)
	case ISta:
		c.store(mode, op, c.A)
	case IStx:
		c.store(mode, op, c.X)
	case ISty:
		c.store(mode, op, c.Y)
	case IStz:
		c.store(mode, op, 0)

	case ITax:
		c.X = c.A
		c.setZN(c.X)
	case ITay:
		c.Y = c.A
		c.setZN(c.Y)
	case ITxa:
		c.A = c.X
		c.setZN(c.A)
	case ITya:
		c.A = c.Y
		c.setZN(c.A)
	case ITsx:
		c.X = c.SP
		c.setZN(c.X)
	case ITxs:
		c.SP = c.X

	case IPha:
		c.push(c.A)
	case IPla:
		c.A = c.pop()
		c.setZN(c.A)
	case IPhx:
		c.push(c.X)
	case IPlx:
		c.X = c.pop()
		c.setZN(c.X)
	case IPhy:
		c.push(c.Y)
	case IPly:
		c.Y = c.pop()
		c.setZN(c.Y)
	case IPhp:
		c.push(c.SR | PBreak | PUnused)
	case IPlp:
		c.restoreSR(c.pop())

	case IStp:
		c.halted = true
	case IWai:
		// Waiting for an interrupt is modeled as a no-op: the caller's
		// Run loop keeps stepping, and serviceInterrupts still fires
		// each Step, so the next IRQ or NMI resumes normally.
	}
}

func (c *Chip) branch(cond bool, disp uint8) {
	if !cond {
		return
	}
	c.PC = uint16(int32(c.PC) + int32(int8(disp)))
}

func (c *Chip) compare(reg, v uint8) {
	c.setFlag(PCarry, reg >= v)
	c.setZN(reg - v)
}

// adc implements ADC for both binary and decimal mode, dispatching to the
// variant-specific decimal routine since NMOS and 65C02 disagree on which
// flags the decimal adjustment corrects.
func (c *Chip) adc(v uint8) {
	carryIn := uint8(0)
	if c.getFlag(PCarry) {
		carryIn = 1
	}
	if c.getFlag(PDecimal) {
		c.adcDecimal(v, carryIn)
		return
	}
	c.adcBinary(v, carryIn)
}

func (c *Chip) adcBinary(v, carryIn uint8) {
	sum := uint16(c.A) + uint16(v) + uint16(carryIn)
	result := uint8(sum)
	c.setFlag(POverflow, (^(c.A^v))&(c.A^result)&0x80 != 0)
	c.setFlag(PCarry, sum > 0xFF)
	c.A = result
	c.setZN(result)
}

// adcDecimal performs BCD addition. Zero and Negative always reflect the
// binary sum, on both variants. Overflow is cleared on the NMOS 6502; on
// the 65C02 it is computed as in binary mode, from the binary sum.
func (c *Chip) adcDecimal(v, carryIn uint8) {
	binSum := uint16(c.A) + uint16(v) + uint16(carryIn)
	binResult := uint8(binSum)

	lo := (c.A & 0x0F) + (v & 0x0F) + carryIn
	hi := (c.A >> 4) + (v >> 4)
	if lo > 9 {
		lo += 6
		hi++
	}
	if hi > 9 {
		hi += 6
	}
	result := (hi << 4) | (lo & 0x0F)
	carryOut := hi > 15

	c.setFlag(PCarry, carryOut)
	if c.variant == Wdc65C02 {
		c.setFlag(POverflow, (^(c.A^v))&(c.A^binResult)&0x80 != 0)
	} else {
		c.setFlag(POverflow, false)
	}
	c.setZN(binResult)
	c.A = result
}

func (c *Chip) sbc(v uint8) {
	carryIn := uint8(0)
	if c.getFlag(PCarry) {
		carryIn = 1
	}
	if c.getFlag(PDecimal) {
		c.sbcDecimal(v, carryIn)
		return
	}
	c.adcBinary(v^0xFF, carryIn)
}

// sbcDecimal mirrors adcDecimal's per-variant flag split: Zero and Negative
// always reflect the plain binary subtraction; Overflow is cleared on the
// NMOS 6502 and computed from the binary result on the 65C02.
func (c *Chip) sbcDecimal(v, carryIn uint8) {
	borrow := int16(1)
	if carryIn != 0 {
		borrow = 0
	}
	binSum := int16(c.A) - int16(v) - borrow
	binResult := uint8(binSum)

	lo := int16(c.A&0x0F) - int16(v&0x0F) - borrow
	hi := int16(c.A>>4) - int16(v>>4)
	if lo < 0 {
		lo += 10
		hi--
	}
	if hi < 0 {
		hi += 10
	}
	result := uint8(hi<<4) | uint8(lo&0x0F)
	carryOut := binSum >= 0

	c.setFlag(PCarry, carryOut)
	if c.variant == Wdc65C02 {
		overflow := (c.A^v)&(c.A^binResult)&0x80 != 0
		c.setFlag(POverflow, overflow)
	} else {
		c.setFlag(POverflow, false)
	}
	c.setZN(binResult)
	c.A = result
}
