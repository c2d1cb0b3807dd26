package cpu

import "testing"

func TestFlagSetClearInstructions(t *testing.T) {
	c, mem := setup(t, 0x8000)
	mem.Write(0x8000, 0x38) // SEC
	mem.Write(0x8001, 0xF8) // SED
	mem.Write(0x8002, 0x78) // SEI
	mem.Write(0x8003, 0x18) // CLC
	mem.Write(0x8004, 0xD8) // CLD
	mem.Write(0x8005, 0x58) // CLI
	mem.Write(0x8006, 0xB8) // CLV

	used, err := c.Execute(14, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 14 {
		t.Errorf("cycles = %d, want 14 (seven 2-cycle instructions)", used)
	}
	if c.GetCarry() || c.GetDecimal() || c.GetInterrupt() {
		t.Errorf("P = 0x%.2X, want C/D/I all clear after the clear instructions", c.P)
	}
}

func TestCLVClearsOverflowOnly(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.P = Negative | Overflow | Carry
	mem.Write(0x8000, 0xB8) // CLV

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.GetOverflow() {
		t.Errorf("V still set after CLV")
	}
	if !c.GetNegative() || !c.GetCarry() {
		t.Errorf("CLV touched unrelated flags: P = 0x%.2X", c.P)
	}
}
