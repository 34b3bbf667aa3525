// Command monitor is a minimal host harness for the emulator core: it
// loads a ROM image, wires ACIA #1 to the process's stdin/stdout, and runs
// the machine until it halts. It does not implement a REPL, command
// grammar, Wozmon-format dumps, terminal raw-mode, or PTY allocation —
// those are a separate collaborator left for a real front end to supply.
package main

import (
	"bufio"
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/vaelen/v6502c/acia"
	"github.com/vaelen/v6502c/bus"
	"github.com/vaelen/v6502c/cpu"
	"github.com/vaelen/v6502c/fileio"
	"github.com/vaelen/v6502c/machine"
	"github.com/vaelen/v6502c/via"
)

var (
	rom     = flag.String("rom", "", "Path to a ROM image to load")
	loadAt  = flag.Uint("load_at", 0xD000, "Address to load the ROM image at")
	variant = flag.String("variant", "65c02", "CPU variant to emulate: nmos6502 or 65c02")
	trace   = flag.Bool("trace", false, "If true, log PC and registers after every instruction")
)

// stdinSource feeds an ACIA from the process's stdin without blocking the
// caller: a single goroutine reads stdin and forwards bytes on a channel.
type stdinSource struct {
	ch chan byte
}

func newStdinSource() *stdinSource {
	s := &stdinSource{ch: make(chan byte, 256)}
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func (s *stdinSource) Available() bool {
	return len(s.ch) > 0
}

func (s *stdinSource) ReadByte() (byte, error) {
	return <-s.ch, nil
}

func parseVariant(name string) cpu.Variant {
	switch name {
	case "nmos6502", "nmos":
		return cpu.Nmos6502
	case "65c02", "wdc65c02", "cmos":
		return cpu.Wdc65C02
	default:
		log.Fatalf("unknown variant %q", name)
		return cpu.VariantUnimplemented
	}
}

func main() {
	flag.Parse()
	if *rom == "" {
		log.Fatal("-rom is required")
	}

	data, err := ioutil.ReadFile(*rom)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	b := bus.New(
		acia.New(newStdinSource(), os.Stdout),
		acia.New(nil, nil),
		via.New(),
		fileio.New(fileio.OSFileSystem{}),
	)
	if err := b.LoadROM(data, uint16(*loadAt)); err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	m, err := machine.New(b, parseVariant(*variant))
	if err != nil {
		log.Fatalf("creating machine: %v", err)
	}
	if *trace {
		m.SetTraceFn(func(c *cpu.Chip) {
			log.Printf("PC=%.4X A=%.2X X=%.2X Y=%.2X SR=%.2X SP=%.2X", c.PC, c.A, c.X, c.Y, c.SR, c.SP)
		})
	}

	if err := m.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
