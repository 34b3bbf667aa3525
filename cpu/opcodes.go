package cpu

// AddrZeroPageRelative is used only by the 65C02 BBR/BBS instructions: a
// zero page address to test, followed by a signed branch displacement.
const AddrZeroPageRelative AddressingMode = 100

// opcodeEntry describes how one opcode byte decodes.
type opcodeEntry struct {
	instr Instruction
	mode  AddressingMode
	bit   uint8 // Bit number for RMB/SMB/BBR/BBS; meaningless otherwise.
	cmos  bool  // True if this slot is only valid on the 65C02 variant.
}

// opcodeTable maps each of the 256 possible opcode bytes to its
// instruction and addressing mode. Entries never explicitly set default
// to {INop, AddrImplied}, matching the spec's requirement that undefined
// NMOS opcodes decode as no-ops; 65C02-only entries are marked cmos so an
// Nmos6502 Chip falls back to NOP for them too.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry

	set := func(op byte, i Instruction, m AddressingMode) {
		t[op] = opcodeEntry{instr: i, mode: m}
	}
	setCmos := func(op byte, i Instruction, m AddressingMode) {
		t[op] = opcodeEntry{instr: i, mode: m, cmos: true}
	}

	// ADC
	set(0x69, IAdc, AddrImmediate)
	set(0x65, IAdc, AddrZeroPage)
	set(0x75, IAdc, AddrZeroPageX)
	set(0x6D, IAdc, AddrAbsolute)
	set(0x7D, IAdc, AddrAbsoluteX)
	set(0x79, IAdc, AddrAbsoluteY)
	set(0x61, IAdc, AddrIndirectX)
	set(0x71, IAdc, AddrIndirectY)
	setCmos(0x72, IAdc, AddrZeroPageIndirect)

	// AND
	set(0x29, IAnd, AddrImmediate)
	set(0x25, IAnd, AddrZeroPage)
	set(0x35, IAnd, AddrZeroPageX)
	set(0x2D, IAnd, AddrAbsolute)
	set(0x3D, IAnd, AddrAbsoluteX)
	set(0x39, IAnd, AddrAbsoluteY)
	set(0x21, IAnd, AddrIndirectX)
	set(0x31, IAnd, AddrIndirectY)
	setCmos(0x32, IAnd, AddrZeroPageIndirect)

	// ASL
	set(0x0A, IAsl, AddrAccumulator)
	set(0x06, IAsl, AddrZeroPage)
	set(0x16, IAsl, AddrZeroPageX)
	set(0x0E, IAsl, AddrAbsolute)
	set(0x1E, IAsl, AddrAbsoluteX)

	// Branches
	set(0x90, IBcc, AddrRelative)
	set(0xB0, IBcs, AddrRelative)
	set(0xF0, IBeq, AddrRelative)
	set(0x30, IBmi, AddrRelative)
	set(0xD0, IBne, AddrRelative)
	set(0x10, IBpl, AddrRelative)
	set(0x50, IBvc, AddrRelative)
	set(0x70, IBvs, AddrRelative)
	setCmos(0x80, IBra, AddrRelative)

	// BIT
	set(0x24, IBit, AddrZeroPage)
	set(0x2C, IBit, AddrAbsolute)
	setCmos(0x34, IBit, AddrZeroPageX)
	setCmos(0x3C, IBit, AddrAbsoluteX)
	setCmos(0x89, IBit, AddrImmediate)

	set(0x00, IBrk, AddrImplied)

	// Flags
	set(0x18, IClc, AddrImplied)
	set(0xD8, ICld, AddrImplied)
	set(0x58, ICli, AddrImplied)
	set(0xB8, IClv, AddrImplied)
	set(0x38, ISec, AddrImplied)
	set(0xF8, ISed, AddrImplied)
	set(0x78, ISei, AddrImplied)

	// CMP
	set(0xC9, ICmp, AddrImmediate)
	set(0xC5, ICmp, AddrZeroPage)
	set(0xD5, ICmp, AddrZeroPageX)
	set(0xCD, ICmp, AddrAbsolute)
	set(0xDD, ICmp, AddrAbsoluteX)
	set(0xD9, ICmp, AddrAbsoluteY)
	set(0xC1, ICmp, AddrIndirectX)
	set(0xD1, ICmp, AddrIndirectY)
	setCmos(0xD2, ICmp, AddrZeroPageIndirect)

	// CPX / CPY
	set(0xE0, ICpx, AddrImmediate)
	set(0xE4, ICpx, AddrZeroPage)
	set(0xEC, ICpx, AddrAbsolute)
	set(0xC0, ICpy, AddrImmediate)
	set(0xC4, ICpy, AddrZeroPage)
	set(0xCC, ICpy, AddrAbsolute)

	// DEC / INC
	set(0xC6, IDec, AddrZeroPage)
	set(0xD6, IDec, AddrZeroPageX)
	set(0xCE, IDec, AddrAbsolute)
	set(0xDE, IDec, AddrAbsoluteX)
	setCmos(0x3A, IDec, AddrAccumulator)
	set(0xE6, IInc, AddrZeroPage)
	set(0xF6, IInc, AddrZeroPageX)
	set(0xEE, IInc, AddrAbsolute)
	set(0xFE, IInc, AddrAbsoluteX)
	setCmos(0x1A, IInc, AddrAccumulator)
	set(0xCA, IDex, AddrImplied)
	set(0x88, IDey, AddrImplied)
	set(0xE8, IInx, AddrImplied)
	set(0xC8, IIny, AddrImplied)

	// EOR
	set(0x49, IEor, AddrImmediate)
	set(0x45, IEor, AddrZeroPage)
	set(0x55, IEor, AddrZeroPageX)
	set(0x4D, IEor, AddrAbsolute)
	set(0x5D, IEor, AddrAbsoluteX)
	set(0x59, IEor, AddrAbsoluteY)
	set(0x41, IEor, AddrIndirectX)
	set(0x51, IEor, AddrIndirectY)
	setCmos(0x52, IEor, AddrZeroPageIndirect)

	// JMP / JSR
	set(0x4C, IJmp, AddrAbsolute)
	set(0x6C, IJmp, AddrIndirect)
	setCmos(0x7C, IJmp, AddrAbsoluteIndexedIndirect)
	set(0x20, IJsr, AddrAbsolute)

	// LDA
	set(0xA9, ILda, AddrImmediate)
	set(0xA5, ILda, AddrZeroPage)
	set(0xB5, ILda, AddrZeroPageX)
	set(0xAD, ILda, AddrAbsolute)
	set(0xBD, ILda, AddrAbsoluteX)
	set(0xB9, ILda, AddrAbsoluteY)
	set(0xA1, ILda, AddrIndirectX)
	set(0xB1, ILda, AddrIndirectY)
	setCmos(0xB2, ILda, AddrZeroPageIndirect)

	// LDX / LDY
	set(0xA2, ILdx, AddrImmediate)
	set(0xA6, ILdx, AddrZeroPage)
	set(0xB6, ILdx, AddrZeroPageY)
	set(0xAE, ILdx, AddrAbsolute)
	set(0xBE, ILdx, AddrAbsoluteY)
	set(0xA0, ILdy, AddrImmediate)
	set(0xA4, ILdy, AddrZeroPage)
	set(0xB4, ILdy, AddrZeroPageX)
	set(0xAC, ILdy, AddrAbsolute)
	set(0xBC, ILdy, AddrAbsoluteX)

	// LSR
	set(0x4A, ILsr, AddrAccumulator)
	set(0x46, ILsr, AddrZeroPage)
	set(0x56, ILsr, AddrZeroPageX)
	set(0x4E, ILsr, AddrAbsolute)
	set(0x5E, ILsr, AddrAbsoluteX)

	set(0xEA, INop, AddrImplied)

	// ORA
	set(0x09, IOra, AddrImmediate)
	set(0x05, IOra, AddrZeroPage)
	set(0x15, IOra, AddrZeroPageX)
	set(0x0D, IOra, AddrAbsolute)
	set(0x1D, IOra, AddrAbsoluteX)
	set(0x19, IOra, AddrAbsoluteY)
	set(0x01, IOra, AddrIndirectX)
	set(0x11, IOra, AddrIndirectY)
	setCmos(0x12, IOra, AddrZeroPageIndirect)

	// Stack
	set(0x48, IPha, AddrImplied)
	set(0x08, IPhp, AddrImplied)
	set(0x68, IPla, AddrImplied)
	set(0x28, IPlp, AddrImplied)
	setCmos(0xDA, IPhx, AddrImplied)
	setCmos(0x5A, IPhy, AddrImplied)
	setCmos(0xFA, IPlx, AddrImplied)
	setCmos(0x7A, IPly, AddrImplied)

	// ROL / ROR
	set(0x2A, IRol, AddrAccumulator)
	set(0x26, IRol, AddrZeroPage)
	set(0x36, IRol, AddrZeroPageX)
	set(0x2E, IRol, AddrAbsolute)
	set(0x3E, IRol, AddrAbsoluteX)
	set(0x6A, IRor, AddrAccumulator)
	set(0x66, IRor, AddrZeroPage)
	set(0x76, IRor, AddrZeroPageX)
	set(0x6E, IRor, AddrAbsolute)
	set(0x7E, IRor, AddrAbsoluteX)

	set(0x40, IRti, AddrImplied)
	set(0x60, IRts, AddrImplied)

	// SBC
	set(0xE9, ISbc, AddrImmediate)
	set(0xE5, ISbc, AddrZeroPage)
	set(0xF5, ISbc, AddrZeroPageX)
	set(0xED, ISbc, AddrAbsolute)
	set(0xFD, ISbc, AddrAbsoluteX)
	set(0xF9, ISbc, AddrAbsoluteY)
	set(0xE1, ISbc, AddrIndirectX)
	set(0xF1, ISbc, AddrIndirectY)
	setCmos(0xF2, ISbc, AddrZeroPageIndirect)

	// STA / STX / STY
	set(0x85, ISta, AddrZeroPage)
	set(0x95, ISta, AddrZeroPageX)
	set(0x8D, ISta, AddrAbsolute)
	set(0x9D, ISta, AddrAbsoluteX)
	set(0x99, ISta, AddrAbsoluteY)
	set(0x81, ISta, AddrIndirectX)
	set(0x91, ISta, AddrIndirectY)
	setCmos(0x92, ISta, AddrZeroPageIndirect)
	set(0x86, IStx, AddrZeroPage)
	set(0x96, IStx, AddrZeroPageY)
	set(0x8E, IStx, AddrAbsolute)
	set(0x84, ISty, AddrZeroPage)
	set(0x94, ISty, AddrZeroPageX)
	set(0x8C, ISty, AddrAbsolute)

	// STZ (65C02)
	setCmos(0x64, IStz, AddrZeroPage)
	setCmos(0x74, IStz, AddrZeroPageX)
	setCmos(0x9C, IStz, AddrAbsolute)
	setCmos(0x9E, IStz, AddrAbsoluteX)

	// TRB / TSB (65C02)
	setCmos(0x14, ITrb, AddrZeroPage)
	setCmos(0x1C, ITrb, AddrAbsolute)
	setCmos(0x04, ITsb, AddrZeroPage)
	setCmos(0x0C, ITsb, AddrAbsolute)

	// Transfers
	set(0xAA, ITax, AddrImplied)
	set(0xA8, ITay, AddrImplied)
	set(0xBA, ITsx, AddrImplied)
	set(0x8A, ITxa, AddrImplied)
	set(0x9A, ITxs, AddrImplied)
	set(0x98, ITya, AddrImplied)

	// STP / WAI (65C02)
	setCmos(0xDB, IStp, AddrImplied)
	setCmos(0xCB, IWai, AddrImplied)

	// RMB0-7 / SMB0-7 / BBR0-7 / BBS0-7 (65C02)
	rmbOps := [8]byte{0x07, 0x17, 0x27, 0x37, 0x47, 0x57, 0x67, 0x77}
	smbOps := [8]byte{0x87, 0x97, 0xA7, 0xB7, 0xC7, 0xD7, 0xE7, 0xF7}
	bbrOps := [8]byte{0x0F, 0x1F, 0x2F, 0x3F, 0x4F, 0x5F, 0x6F, 0x7F}
	bbsOps := [8]byte{0x8F, 0x9F, 0xAF, 0xBF, 0xCF, 0xDF, 0xEF, 0xFF}
	for bit := byte(0); bit < 8; bit++ {
		t[rmbOps[bit]] = opcodeEntry{instr: IRmb, mode: AddrZeroPage, bit: bit, cmos: true}
		t[smbOps[bit]] = opcodeEntry{instr: ISmb, mode: AddrZeroPage, bit: bit, cmos: true}
		t[bbrOps[bit]] = opcodeEntry{instr: IBbr, mode: AddrZeroPageRelative, bit: bit, cmos: true}
		t[bbsOps[bit]] = opcodeEntry{instr: IBbs, mode: AddrZeroPageRelative, bit: bit, cmos: true}
	}

	return t
}
