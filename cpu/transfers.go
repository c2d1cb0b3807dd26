package cpu

import "github.com/sixtwofive/m6502/memory"

// transfer builds an opFunc for TAX/TAY/TXA/TYA: copy src to dst, set Z/N
// from the new value, and charge the single implicit cycle every 2-cycle
// register-only instruction pays beyond its opcode fetch.
func transfer(src, dst register) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := c.get(src)
		c.set(dst, v)
		c.zeroNegativeCheck(v)
		*cycles--
	}
}
