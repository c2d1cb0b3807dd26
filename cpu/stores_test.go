package cpu

import "testing"

func TestSTAZeroPage(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x5A
	mem.Write(0x8000, 0x85) // STA $20
	mem.Write(0x8001, 0x20)

	used, err := c.Execute(3, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 3 {
		t.Errorf("cycles = %d, want 3", used)
	}
	if got := mem.Read(0x0020); got != 0x5A {
		t.Errorf("mem[0x20] = 0x%.2X, want 0x5A", got)
	}
}

func TestSTAAbsoluteXAlwaysPaysPageCrossCycle(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0x11
	c.X = 0x01
	mem.Write(0x8000, 0x9D) // STA $4402,X -> $4403, same page
	mem.Write(0x8001, 0x02)
	mem.Write(0x8002, 0x44)

	used, err := c.Execute(5, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// Stores always pay the 5-cycle form, even without an actual page cross.
	if used != 5 {
		t.Errorf("cycles = %d, want 5 (forced)", used)
	}
	if got := mem.Read(0x4403); got != 0x11 {
		t.Errorf("mem[0x4403] = 0x%.2X, want 0x11", got)
	}
}

func TestSTXSTY(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.X = 0x01
	c.Y = 0x02
	mem.Write(0x8000, 0x86) // STX $30
	mem.Write(0x8001, 0x30)
	mem.Write(0x8002, 0x84) // STY $31
	mem.Write(0x8003, 0x31)

	if _, err := c.Execute(6, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := mem.Read(0x0030); got != 0x01 {
		t.Errorf("mem[0x30] = 0x%.2X, want 0x01", got)
	}
	if got := mem.Read(0x0031); got != 0x02 {
		t.Errorf("mem[0x31] = 0x%.2X, want 0x02", got)
	}
}
