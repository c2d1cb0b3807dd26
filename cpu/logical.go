package cpu

import "github.com/sixtwofive/m6502/memory"

// logical builds an opFunc for AND/ORA/EOR: A <- A op operand, Z/N from A.
func logical(op func(a, v uint8) uint8, addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := fetchOperand(c, mem, cycles, addrFn)
		c.A = op(c.A, v)
		c.zeroNegativeCheck(c.A)
	}
}

func andOp(a, v uint8) uint8 { return a & v }
func oraOp(a, v uint8) uint8 { return a | v }
func eorOp(a, v uint8) uint8 { return a ^ v }

// bitTest builds an opFunc for BIT: Z from A&operand, N/V copied directly
// from operand's bit 7/bit 6. A is not modified.
func bitTest(addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := fetchOperand(c, mem, cycles, addrFn)
		c.zeroCheck(c.A & v)
		c.SetNegative(v&Negative != 0)
		c.SetOverflow(v&Overflow != 0)
	}
}
