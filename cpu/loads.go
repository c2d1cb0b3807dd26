package cpu

import "github.com/sixtwofive/m6502/memory"

// load builds an opFunc for LDA/LDX/LDY: fetch the operand via addrFn,
// store it in dest, and set Z/N from the new value. No other flags change.
func load(dest register, addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := fetchOperand(c, mem, cycles, addrFn)
		c.set(dest, v)
		c.zeroNegativeCheck(v)
	}
}
