package cpu

// Instruction identifies the operation an opcode performs, independent of
// its addressing mode.
type Instruction int

const (
	INop Instruction = iota

	IAdc
	IAnd
	IAsl
	IBcc
	IBcs
	IBeq
	IBit
	IBmi
	IBne
	IBpl
	IBrk
	IBvc
	IBvs
	IClc
	ICld
	ICli
	IClv
	ICmp
	ICpx
	ICpy
	IDec
	IDex
	IDey
	IEor
	IInc
	IInx
	IIny
	IJmp
	IJsr
	ILda
	ILdx
	ILdy
	ILsr
	IOra
	IPha
	IPhp
	IPla
	IPlp
	IRol
	IRor
	IRti
	IRts
	ISbc
	ISec
	ISed
	ISei
	ISta
	IStx
	ISty
	ITax
	ITay
	ITsx
	ITxa
	ITxs
	ITya

	// 65C02 additions.
	IBra
	IPhx
	IPhy
	IPlx
	IPly
	IStz
	ITrb
	ITsb
	IStp
	IWai
	IRmb // Reset memory bit; bit number carried in the opcode entry.
	ISmb // Set memory bit; bit number carried in the opcode entry.
	IBbr // Branch if memory bit reset.
	IBbs // Branch if memory bit set.
)
