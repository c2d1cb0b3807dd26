package cpu

import "github.com/sixtwofive/m6502/memory"

// incDecReg builds an opFunc for INX/INY/DEX/DEY: add delta (1 or -1) to
// the register, set Z/N, 2 cycles (1 implicit beyond the opcode fetch).
func incDecReg(reg register, delta uint8) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := c.get(reg) + delta
		c.set(reg, v)
		c.zeroNegativeCheck(v)
		*cycles--
	}
}

// incDecMem builds an opFunc for INC/DEC: read-modify-write memory by delta
// (1 or -1), set Z/N from the new value.
func incDecMem(delta uint8, addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		rmwOperand(c, mem, cycles, addrFn, func(v uint8) uint8 {
			return v + delta
		})
	}
}
