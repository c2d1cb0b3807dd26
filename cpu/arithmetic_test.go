package cpu

import "testing"

func TestADCOverflowIntoNegative(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x7F
	mem.Write(0x8000, 0x69) // ADC #$01
	mem.Write(0x8001, 0x01)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = 0x%.2X, want 0x80", c.A)
	}
	if !c.GetOverflow() {
		t.Errorf("V not set: 0x7F+0x01 overflows into negative")
	}
	if !c.GetNegative() {
		t.Errorf("N not set for result 0x80")
	}
	if c.GetCarry() {
		t.Errorf("C set, want clear (no unsigned carry out of bit 7)")
	}
}

func TestADCCarryOut(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0xFF
	mem.Write(0x8000, 0x69)
	mem.Write(0x8001, 0x01)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x00 {
		t.Errorf("A = 0x%.2X, want 0x00", c.A)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: 0xFF+0x01 carries out")
	}
	if !c.GetZero() {
		t.Errorf("Z not set for result 0x00")
	}
	if c.GetOverflow() {
		t.Errorf("V set, want clear (no signed overflow)")
	}
}

func TestADCUsesIncomingCarry(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x01
	c.SetCarry(true)
	mem.Write(0x8000, 0x69)
	mem.Write(0x8001, 0x01)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x03 {
		t.Errorf("A = 0x%.2X, want 0x03 (0x01+0x01+incoming carry)", c.A)
	}
}

func TestSBCNoBorrow(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x10
	c.SetCarry(true) // carry set means "no borrow" going in, per 6502 convention
	mem.Write(0x8000, 0xE9) // SBC #$05
	mem.Write(0x8001, 0x05)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x0B {
		t.Errorf("A = 0x%.2X, want 0x0B", c.A)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: 0x10-0x05 needs no borrow, carry should stay set")
	}
}

func TestSBCWithBorrow(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x00
	c.SetCarry(false) // a borrow is already pending
	mem.Write(0x8000, 0xE9)
	mem.Write(0x8001, 0x01)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0xFE {
		t.Errorf("A = 0x%.2X, want 0xFE (0x00-0x01-1 wraps)", c.A)
	}
	if c.GetCarry() {
		t.Errorf("C set, want clear: result still needed a borrow")
	}
}

func TestCMPSetsCarryOnGreaterOrEqual(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x10
	mem.Write(0x8000, 0xC9) // CMP #$10
	mem.Write(0x8001, 0x10)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: A >= operand")
	}
	if !c.GetZero() {
		t.Errorf("Z not set: A == operand")
	}
	if c.A != 0x10 {
		t.Errorf("A mutated by CMP: got 0x%.2X, want unchanged 0x10", c.A)
	}
}

func TestBITSetsNAndVFromOperandNotResult(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0xFF
	mem.Write(0x8000, 0x24) // BIT $10
	mem.Write(0x8001, 0x10)
	mem.Write(0x0010, 0xC0) // bits 7 and 6 set, A&v != 0

	if _, err := c.Execute(3, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !c.GetNegative() || !c.GetOverflow() {
		t.Errorf("N/V not copied from operand bits 7/6: P = 0x%.2X", c.P)
	}
	if c.GetZero() {
		t.Errorf("Z set, want clear: A&operand != 0")
	}
	if c.A != 0xFF {
		t.Errorf("A mutated by BIT: got 0x%.2X", c.A)
	}
}
