// Package bus implements the flat 16 bit address space shared by the CPU
// and its peripherals: RAM, a write-protected ROM region, and the four
// memory-mapped device windows (two ACIAs, one VIA, one file-I/O device).
package bus

import (
	"github.com/vaelen/v6502c/acia"
	"github.com/vaelen/v6502c/addrset"
	"github.com/vaelen/v6502c/fileio"
	"github.com/vaelen/v6502c/via"
)

// Device address windows, in priority order.
const (
	ACIA1Start = 0xC010
	ACIA1End   = 0xC013
	ACIA2Start = 0xC020
	ACIA2End   = 0xC023
	VIAStart   = 0xC030
	VIAEnd     = 0xC03F
	FileIOStart = 0xC040
	FileIOEnd   = 0xC04F
)

// Bus dispatches reads and writes across RAM and the device windows, and
// enforces write protection over any configured ranges (typically ROM).
type Bus struct {
	ram       [65536]byte
	protected *addrset.Set

	ACIA1  *acia.ACIA
	ACIA2  *acia.ACIA
	VIA    *via.VIA
	FileIO *fileio.FileIO

	// Verbose, when set, is called for every write dropped due to write
	// protection. Left nil by default.
	Verbose func(addr uint16)
}

// New creates a Bus with the given devices wired into their windows. Any
// device argument may be nil, in which case reads from its window return 0
// and writes are discarded.
func New(acia1, acia2 *acia.ACIA, v *via.VIA, f *fileio.FileIO) *Bus {
	return &Bus{
		protected: addrset.New(),
		ACIA1:     acia1,
		ACIA2:     acia2,
		VIA:       v,
		FileIO:    f,
	}
}

// Protect adds r to the set of write-protected ranges.
func (b *Bus) Protect(r addrset.Range) error {
	return b.protected.Add(r)
}

// Unprotect removes r from the set of write-protected ranges.
func (b *Bus) Unprotect(r addrset.Range) {
	b.protected.Remove(r)
}

// IsProtected reports whether addr falls within a protected range.
func (b *Bus) IsProtected(addr uint16) bool {
	return b.protected.Contains(addr)
}

// LoadROM copies data into RAM starting at start and protects that range
// from writes. It must be called before the first CPU step.
func (b *Bus) LoadROM(data []byte, start uint16) error {
	for i, v := range data {
		b.ram[uint16(int(start)+i)] = v
	}
	end := uint32(start) + uint32(len(data)) - 1
	if len(data) == 0 {
		end = uint32(start)
	}
	if end > 0xFFFF {
		end = 0xFFFF
	}
	return b.Protect(addrset.Range{Start: start, End: uint16(end)})
}

// Read dispatches a guest memory read.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr >= ACIA1Start && addr <= ACIA1End:
		if b.ACIA1 == nil {
			return 0
		}
		return b.ACIA1.Read(byte(addr & 0x03))
	case addr >= ACIA2Start && addr <= ACIA2End:
		if b.ACIA2 == nil {
			return 0
		}
		return b.ACIA2.Read(byte(addr & 0x03))
	case addr >= VIAStart && addr <= VIAEnd:
		if b.VIA == nil {
			return 0
		}
		return b.VIA.Read(byte(addr & 0x0F))
	case addr >= FileIOStart && addr <= FileIOEnd:
		if b.FileIO == nil {
			return 0
		}
		return b.FileIO.Read(byte(addr & 0x0F))
	default:
		return b.ram[addr]
	}
}

// Write dispatches a guest memory write. Writes to a protected RAM address
// are silently dropped.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr >= ACIA1Start && addr <= ACIA1End:
		if b.ACIA1 != nil {
			b.ACIA1.Write(byte(addr&0x03), val)
		}
	case addr >= ACIA2Start && addr <= ACIA2End:
		if b.ACIA2 != nil {
			b.ACIA2.Write(byte(addr&0x03), val)
		}
	case addr >= VIAStart && addr <= VIAEnd:
		if b.VIA != nil {
			b.VIA.Write(byte(addr&0x0F), val)
		}
	case addr >= FileIOStart && addr <= FileIOEnd:
		if b.FileIO != nil {
			b.FileIO.Write(byte(addr&0x0F), val)
		}
	default:
		if b.IsProtected(addr) {
			if b.Verbose != nil {
				b.Verbose(addr)
			}
			return
		}
		b.ram[addr] = val
	}
}
