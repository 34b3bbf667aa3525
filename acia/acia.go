// Package acia emulates a single channel of a MOS 6551 Asynchronous
// Communications Interface Adapter: the serial UART analogue used to hook
// a guest program up to a terminal. Only the register semantics required
// by a guest program are modeled; baud-rate generation is not emulated.
package acia

import "io"

// Register offsets within an ACIA's 4 byte window.
const (
	RegData    = 0x0
	RegStatus  = 0x1
	RegCommand = 0x2
	RegControl = 0x3
)

// Status register bits.
const (
	StatusRDRF = 0x08 // Receive Data Register Full.
	StatusTDRE = 0x10 // Transmit Data Register Empty; this emulation always reports ready.
)

// InputSource is the non-blocking byte source an ACIA reads from. Available
// must not consume a byte; only ReadByte may.
type InputSource interface {
	// Available reports whether a byte can be read without blocking.
	Available() bool
	// ReadByte reads and consumes exactly one byte.
	ReadByte() (byte, error)
}

// ACIA holds the register state for one 6551-style serial channel.
type ACIA struct {
	input  InputSource // May be nil, in which case RDRF never sets.
	output io.Writer   // May be nil, in which case writes are discarded.

	command byte
	control byte
	rxData  byte
	rxFull  bool
}

// New creates an ACIA reading from in (may be nil) and writing to out (may
// be nil).
func New(in InputSource, out io.Writer) *ACIA {
	a := &ACIA{input: in, output: out}
	a.Reset()
	return a
}

// Reset clears command, control and the pending-receive state, as happens
// on a programmed reset (write to the status register) or machine reset.
func (a *ACIA) Reset() {
	a.command = 0
	a.control = 0
	a.rxData = 0
	a.rxFull = false
}

// inputAvailable reports whether a byte is ready without consuming it.
func (a *ACIA) inputAvailable() bool {
	return a.input != nil && a.input.Available()
}

// Read returns the value of register reg & 0x03.
func (a *ACIA) Read(reg byte) byte {
	switch reg & 0x03 {
	case RegData:
		if !a.rxFull && a.inputAvailable() {
			if b, err := a.input.ReadByte(); err == nil {
				if b == '\n' {
					b = '\r'
				}
				a.rxData = b
			}
		}
		a.rxFull = false
		return a.rxData
	case RegStatus:
		status := byte(StatusTDRE)
		if a.rxFull || a.inputAvailable() {
			status |= StatusRDRF
		}
		return status
	case RegCommand:
		return a.command
	case RegControl:
		return a.control
	}
	return 0xFF
}

// Write stores value into register reg & 0x03.
func (a *ACIA) Write(reg byte, value byte) {
	switch reg & 0x03 {
	case RegData:
		if a.output != nil {
			a.output.Write([]byte{value})
			if f, ok := a.output.(interface{ Flush() error }); ok {
				f.Flush()
			}
		}
	case RegStatus:
		a.Reset()
	case RegCommand:
		a.command = value
	case RegControl:
		a.control = value
	}
}
