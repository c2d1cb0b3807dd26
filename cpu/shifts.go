package cpu

import "github.com/sixtwofive/m6502/memory"

// asl shifts v left one bit, setting C from the old bit 7.
func (c *CPU) asl(v uint8) uint8 {
	c.SetCarry(v&Negative != 0)
	return v << 1
}

// lsr shifts v right one bit (logical), setting C from the old bit 0.
func (c *CPU) lsr(v uint8) uint8 {
	c.SetCarry(v&0x01 != 0)
	return v >> 1
}

// rol rotates v left one bit through Carry: new bit 0 <- old C, new C <-
// old bit 7.
func (c *CPU) rol(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.GetCarry() {
		oldCarry = 1
	}
	c.SetCarry(v&Negative != 0)
	return (v << 1) | oldCarry
}

// ror rotates v right one bit through Carry: new bit 7 <- old C, new C <-
// old bit 0.
func (c *CPU) ror(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.GetCarry() {
		oldCarry = 0x80
	}
	c.SetCarry(v&0x01 != 0)
	return (v >> 1) | oldCarry
}

// shiftAcc builds an opFunc for the accumulator form of ASL/LSR/ROL/ROR: 2
// cycles, operates directly on A.
func shiftAcc(op func(*CPU, uint8) uint8) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		c.A = op(c, c.A)
		c.zeroNegativeCheck(c.A)
		*cycles--
	}
}

// shiftMem builds an opFunc for the memory form of ASL/LSR/ROL/ROR: a
// read-modify-write against the addressed byte.
func shiftMem(op func(*CPU, uint8) uint8, addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		rmwOperand(c, mem, cycles, addrFn, func(v uint8) uint8 {
			return op(c, v)
		})
	}
}
