package cpu

import "testing"

func TestBRKPushesReturnAddressAndStatusThenLoadsIRQVector(t *testing.T) {
	c, mem := setup(t, 0x8000)
	mem.Write(IRQVector, 0x00)
	mem.Write(IRQVector+1, 0x90)
	c.P = Zero
	mem.Write(0x8000, 0x00) // BRK

	used, err := c.Execute(7, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 7 {
		t.Errorf("cycles = %d, want 7", used)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC = 0x%.4X, want 0x9000 (loaded from IRQ vector)", c.PC)
	}
	if !c.GetInterrupt() {
		t.Errorf("I not set after BRK")
	}
	if c.SP != 0xFC {
		t.Errorf("SP = 0x%.2X, want 0xFC after three pushes", c.SP)
	}
	pushedStatus := mem.Read(0x01FD)
	if pushedStatus&(Break|Unused) != (Break | Unused) {
		t.Errorf("pushed status = 0x%.2X, want Break|Unused set", pushedStatus)
	}
	returnHi := mem.Read(0x01FF)
	returnLo := mem.Read(0x01FE)
	if returnHi != 0x80 || returnLo != 0x02 {
		t.Errorf("pushed return address = 0x%.2X%.2X, want 0x8002 (PC+1 past the signature byte)", returnHi, returnLo)
	}
}

func TestRTIRestoresStatusAndPCWithNoAdjustment(t *testing.T) {
	c, mem := setup(t, 0x8000)
	mem.Write(0x01FF, 0x12) // return PC high byte
	mem.Write(0x01FE, 0x34) // return PC low byte
	mem.Write(0x01FD, 0x56) // status, with bit 4 set to be cleared on pull
	c.SP = 0xFC
	mem.Write(0x8000, 0x40) // RTI

	used, err := c.Execute(6, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 6 {
		t.Errorf("cycles = %d, want 6", used)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = 0x%.4X, want 0x1234, no +1 adjustment", c.PC)
	}
	if c.P != 0x56&^(Break|Unused) {
		t.Errorf("P = 0x%.2X, want 0x%.2X (bits 4/5 cleared)", c.P, 0x56&^(Break|Unused))
	}
}

func TestNOP(t *testing.T) {
	c, mem := setup(t, 0x8000)
	mem.Write(0x8000, 0xEA)

	used, err := c.Execute(2, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if used != 2 {
		t.Errorf("cycles = %d, want 2", used)
	}
	if c.PC != 0x8001 {
		t.Errorf("PC = 0x%.4X, want 0x8001", c.PC)
	}
}
