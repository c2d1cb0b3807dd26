package cpu

import "github.com/sixtwofive/m6502/memory"

// setClearFlag builds an opFunc for the single-flag CLC/SEC/CLI/SEI/CLD/
// SED/CLV instructions: 2 cycles, no other state touched.
func setClearFlag(mask uint8, v bool) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		c.setFlag(mask, v)
		*cycles--
	}
}
