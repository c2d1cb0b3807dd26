package cpu

import "testing"

func TestANDORAEOR(t *testing.T) {
	c, mem := setup(t, 0x8000)
	c.A = 0xF0
	mem.Write(0x8000, 0x29) // AND #$0F
	mem.Write(0x8001, 0x0F)
	mem.Write(0x8002, 0x09) // ORA #$0F
	mem.Write(0x8003, 0x0F)
	mem.Write(0x8004, 0x49) // EOR #$FF
	mem.Write(0x8005, 0xFF)

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute AND: %v", err)
	}
	if c.A != 0x00 {
		t.Fatalf("A = 0x%.2X after AND, want 0x00", c.A)
	}
	if !c.GetZero() {
		t.Errorf("Z not set after AND yielding 0")
	}

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute ORA: %v", err)
	}
	if c.A != 0x0F {
		t.Fatalf("A = 0x%.2X after ORA, want 0x0F", c.A)
	}

	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute EOR: %v", err)
	}
	if c.A != 0xF0 {
		t.Errorf("A = 0x%.2X after EOR, want 0xF0", c.A)
	}
	if !c.GetNegative() {
		t.Errorf("N not set for result 0xF0")
	}
}
