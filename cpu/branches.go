package cpu

import "github.com/sixtwofive/m6502/memory"

// branch builds an opFunc for a conditional branch: the operand is a signed
// 8-bit displacement relative to the address of the instruction following
// the branch. Taking the branch costs one extra cycle; crossing a page
// while taking it costs one more on top of that.
func branch(cond func(*CPU) bool) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		offset := int8(mem.Read(c.PC))
		c.PC++
		*cycles--

		if !cond(c) {
			return
		}

		oldPC := c.PC
		newPC := uint16(int32(oldPC) + int32(offset))
		c.PC = newPC
		*cycles--
		if (oldPC & 0xFF00) != (newPC & 0xFF00) {
			*cycles--
		}
	}
}

func carrySet(c *CPU) bool     { return c.GetCarry() }
func carryClear(c *CPU) bool   { return !c.GetCarry() }
func zeroSet(c *CPU) bool      { return c.GetZero() }
func zeroClear(c *CPU) bool    { return !c.GetZero() }
func negativeSet(c *CPU) bool  { return c.GetNegative() }
func negativeClear(c *CPU) bool { return !c.GetNegative() }
func overflowSet(c *CPU) bool  { return c.GetOverflow() }
func overflowClear(c *CPU) bool { return !c.GetOverflow() }
