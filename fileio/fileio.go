// Package fileio emulates a small memory-mapped pseudo-device used by the
// guest to load and save files through a byte-wide register window,
// independent of any host terminal. It has no hardware precedent; it
// exists purely to give guest programs (e.g. a BASIC LOAD/SAVE routine) a
// way to reach the host filesystem.
package fileio

import "io"

// Register offsets within the device's 4 byte window.
const (
	RegStatus    = 0x0 // Read: status. Write: command.
	RegData      = 0x1
	RegNameIndex = 0x2
	RegNameChar  = 0x3
)

// Command values written to RegStatus.
const (
	CmdReset  = 0x00
	CmdOpenR  = 0x01
	CmdOpenW  = 0x02
	CmdRead   = 0x03
	CmdWrite  = 0x04
	CmdClose  = 0x05
)

// Status register bits.
const (
	StatusOpen  = 0x01
	StatusEOF   = 0x02
	StatusErr   = 0x04
	StatusReady = 0x80
)

// nameMaxLen is the size of the filename buffer.
const nameMaxLen = 256

// FileSystem abstracts host filesystem access so tests can substitute an
// in-memory filesystem.
type FileSystem interface {
	OpenRead(name string) (io.ReadCloser, error)
	OpenWrite(name string) (io.WriteCloser, error)
}

// FileIO is the memory-mapped file device described by the spec.
type FileIO struct {
	fs FileSystem

	reader io.ReadCloser
	writer io.WriteCloser

	status    byte
	data      byte
	nameIndex byte
	filename  [nameMaxLen]byte
}

// New creates a FileIO device backed by fs.
func New(fs FileSystem) *FileIO {
	f := &FileIO{fs: fs}
	f.Reset()
	return f
}

// Reset closes any open file and restores the power-on default state.
func (f *FileIO) Reset() {
	f.closeFile()
	f.status = StatusReady
	f.data = 0
	f.nameIndex = 0
	for i := range f.filename {
		f.filename[i] = 0
	}
}

func (f *FileIO) closeFile() {
	if f.reader != nil {
		f.reader.Close()
		f.reader = nil
	}
	if f.writer != nil {
		f.writer.Close()
		f.writer = nil
	}
}

// name returns the filename as written so far, stopping at the byte it was
// null-terminated at (or at the write cursor if never terminated).
func (f *FileIO) name() string {
	n := int(f.nameIndex)
	if n > len(f.filename) {
		n = len(f.filename)
	}
	for i := 0; i < n; i++ {
		if f.filename[i] == 0 {
			return string(f.filename[:i])
		}
	}
	return string(f.filename[:n])
}

// Read returns the value of register reg & 0x03.
func (f *FileIO) Read(reg byte) byte {
	switch reg & 0x03 {
	case RegStatus:
		return f.status
	case RegData:
		return f.data
	case RegNameIndex:
		return f.nameIndex
	case RegNameChar:
		return f.filename[f.nameIndex]
	}
	return 0xFF
}

// Write stores value into register reg & 0x03, or executes it as a command
// when reg selects RegStatus.
func (f *FileIO) Write(reg byte, value byte) {
	switch reg & 0x03 {
	case RegStatus:
		f.command(value)
	case RegData:
		f.data = value
	case RegNameIndex:
		f.nameIndex = value
	case RegNameChar:
		f.filename[f.nameIndex] = value
		if int(f.nameIndex) < len(f.filename)-1 {
			f.nameIndex++
		}
	}
}

func (f *FileIO) command(cmd byte) {
	switch cmd {
	case CmdReset:
		f.Reset()
	case CmdOpenR:
		f.closeFile()
		r, err := f.fs.OpenRead(f.name())
		if err != nil {
			f.status = StatusReady | StatusErr
			return
		}
		f.reader = r
		f.status = StatusReady | StatusOpen
	case CmdOpenW:
		f.closeFile()
		w, err := f.fs.OpenWrite(f.name())
		if err != nil {
			f.status = StatusReady | StatusErr
			return
		}
		f.writer = w
		f.status = StatusReady | StatusOpen
	case CmdRead:
		if f.reader == nil {
			f.status |= StatusErr
			return
		}
		var b [1]byte
		n, err := f.reader.Read(b[:])
		if n == 0 || err != nil {
			f.status |= StatusEOF
			f.data = 0
			return
		}
		f.data = b[0]
	case CmdWrite:
		if f.writer == nil {
			f.status |= StatusErr
			return
		}
		f.writer.Write([]byte{f.data})
	case CmdClose:
		f.closeFile()
		f.status = StatusReady
	}
}
