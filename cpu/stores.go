package cpu

import "github.com/sixtwofive/m6502/memory"

// store builds an opFunc for STA/STX/STY: compute the effective address via
// addrFn (callers pass the forced variant where the mode requires it) and
// write the source register there. No flags change.
func store(src register, addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		storeOperand(c, mem, cycles, addrFn, c.get(src))
	}
}
