package machine

import (
	"testing"

	"github.com/vaelen/v6502c/acia"
	"github.com/vaelen/v6502c/bus"
	"github.com/vaelen/v6502c/cpu"
	"github.com/vaelen/v6502c/fileio"
	"github.com/vaelen/v6502c/via"
)

func newTestMachine(t *testing.T) (*Machine, *bus.Bus) {
	t.Helper()
	b := bus.New(acia.New(nil, nil), acia.New(nil, nil), via.New(), fileio.New(fileio.OSFileSystem{}))
	m, err := New(b, cpu.Wdc65C02)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, b
}

func TestMachineLoadROMAndReset(t *testing.T) {
	m, _ := newTestMachine(t)
	rom := []byte{0xA9, 0x42, 0xEA} // LDA #$42, NOP
	if err := m.LoadROM(rom, 0xF000); err != nil {
		t.Fatal(err)
	}
	m.Bus.Write(cpu.ResetVector, 0x00)
	m.Bus.Write(cpu.ResetVector+1, 0xF0)

	if err := m.Step(); err != nil { // services reset
		t.Fatal(err)
	}
	if m.CPU.PC != 0xF000 {
		t.Fatalf("PC after reset = %.4X, want F000", m.CPU.PC)
	}
	if err := m.Step(); err != nil { // LDA #$42
		t.Fatal(err)
	}
	if m.CPU.A != 0x42 {
		t.Errorf("A = %.2X, want 42", m.CPU.A)
	}
}

func TestMachineVIATimerRaisesIrq(t *testing.T) {
	m, b := newTestMachine(t)
	// CLI then spin on NOP so the IRQ has somewhere to interrupt.
	rom := []byte{0x58, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA}
	if err := m.LoadROM(rom, 0xF000); err != nil {
		t.Fatal(err)
	}
	b.Write(cpu.ResetVector, 0x00)
	b.Write(cpu.ResetVector+1, 0xF0)
	b.Write(cpu.IRQVector, 0x00)
	b.Write(cpu.IRQVector+1, 0xE0)
	b.Write(0xE000, 0xEA) // landing pad for the interrupt handler

	if err := m.Step(); err != nil { // reset
		t.Fatal(err)
	}
	if err := m.Step(); err != nil { // CLI
		t.Fatal(err)
	}

	b.VIA.Write(via.RegIER, 0x80|via.IntT1) // enable T1 interrupt
	b.VIA.Write(via.RegT1LL, 0x01)
	b.VIA.Write(via.RegT1CH, 0x00) // latch low=1, high=0 -> starts counter at 1

	for i := 0; i < 5; i++ {
		if err := m.Step(); err != nil {
			t.Fatal(err)
		}
		if m.CPU.PC == 0xE000 {
			return
		}
	}
	t.Fatal("VIA timer interrupt was never serviced by the CPU")
}
