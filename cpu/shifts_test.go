package cpu

import "testing"

func TestASLAccumulator(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x81 // bit 7 set
	mem.Write(0x8000, 0x0A) // ASL A

	used, err := c.Execute(2, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 2 {
		t.Errorf("cycles = %d, want 2", used)
	}
	if c.A != 0x02 {
		t.Errorf("A = 0x%.2X, want 0x02", c.A)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: old bit 7 was 1")
	}
}

func TestLSRMemory(t *testing.T) {
	c, mem := setup(t, 0x8000)
	mem.Write(0x0020, 0x03) // bit 0 set
	mem.Write(0x8000, 0x46) // LSR $20
	mem.Write(0x8001, 0x20)

	used, err := c.Execute(5, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 5 {
		t.Errorf("cycles = %d, want 5", used)
	}
	if got := mem.Read(0x0020); got != 0x01 {
		t.Errorf("mem[0x20] = 0x%.2X, want 0x01", got)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: old bit 0 was 1")
	}
}

func TestROLUsesIncomingCarry(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x80
	c.SetCarry(true)
	mem.Write(0x8000, 0x2A) // ROL A

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x01 {
		t.Errorf("A = 0x%.2X, want 0x01 (old bit 7 -> C, incoming C -> bit 0)", c.A)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: old bit 7 was 1")
	}
}

func TestRORUsesIncomingCarry(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x01
	c.SetCarry(true)
	mem.Write(0x8000, 0x6A) // ROR A

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = 0x%.2X, want 0x80 (old bit 0 -> C, incoming C -> bit 7)", c.A)
	}
	if !c.GetCarry() {
		t.Errorf("C not set: old bit 0 was 1")
	}
}
