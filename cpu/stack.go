package cpu

import "github.com/sixtwofive/m6502/memory"

// iTSX implements TSX: copy SP into X, set Z/N, 2 cycles.
func iTSX(c *CPU, mem *memory.Memory, cycles *int) {
	c.X = c.SP
	c.zeroNegativeCheck(c.X)
	*cycles--
}

// iTXS implements TXS: copy X into SP. No flags change. 2 cycles.
func iTXS(c *CPU, mem *memory.Memory, cycles *int) {
	c.SP = c.X
	*cycles--
}

// iPHA pushes A. 3 cycles (1 implicit + 1 push).
func iPHA(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles--
	pushByte(c, mem, cycles, c.A)
}

// iPHP pushes P with bits 4 (Break) and 5 (Unused) forced set, regardless of
// their live state. 3 cycles.
func iPHP(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles--
	pushByte(c, mem, cycles, c.P|Break|Unused)
}

// iPLA pulls into A, sets Z/N. 4 cycles (1 implicit + 1 SP bump + 1 pull,
// plus the initial implicit cycle below).
func iPLA(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles--
	*cycles-- // SP increment is its own bus cycle before the read
	c.A = pullByte(c, mem, cycles)
	c.zeroNegativeCheck(c.A)
}

// iPLP pulls into P, clearing bits 4 and 5 of the loaded byte (Break and
// Unused are only set in the copy of P that BRK/PHP push). 4 cycles.
func iPLP(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles--
	*cycles--
	c.P = pullByte(c, mem, cycles) &^ (Break | Unused)
}
