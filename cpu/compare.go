package cpu

import "github.com/sixtwofive/m6502/memory"

// compare builds an opFunc for CMP/CPX/CPY: computes register-operand
// without storing it. C = register >= operand (unsigned), Z = equal, N =
// bit 7 of the (wrapping) difference. No other flags are touched.
func compare(reg register, addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := fetchOperand(c, mem, cycles, addrFn)
		r := c.get(reg)
		diff := r - v
		c.SetCarry(r >= v)
		c.zeroCheck(diff)
		c.negativeCheck(diff)
	}
}
