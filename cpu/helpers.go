package cpu

import "github.com/sixtwofive/m6502/memory"

// register is a sum-type selector for the three general registers. Go has
// no pointer-to-member to pass "which register" around, so load/store/
// transfer/compare builders take one of these and switch on it in get/set
// instead.
type register int

const (
	regA register = iota
	regX
	regY
)

func (c *CPU) get(r register) uint8 {
	switch r {
	case regA:
		return c.A
	case regX:
		return c.X
	default:
		return c.Y
	}
}

func (c *CPU) set(r register, v uint8) {
	switch r {
	case regA:
		c.A = v
	case regX:
		c.X = v
	default:
		c.Y = v
	}
}

// fetchOperand resolves addrFn to an effective address, reads the byte
// there, and charges the one bus cycle every load/logical/compare/BIT
// instruction pays beyond its addressing mode's own cost.
func fetchOperand(c *CPU, mem *memory.Memory, cycles *int, addrFn addrFn) uint8 {
	addr := addrFn(c, mem, cycles)
	v := mem.Read(addr)
	*cycles--
	return v
}

// storeOperand resolves addrFn to an effective address and writes val
// there, charging the one bus cycle the write itself costs beyond
// addressing. Callers pass the forced addrFn variant for the modes (Abs,X/
// Abs,Y/(Ind),Y) where a store always performs the final-page bus access.
func storeOperand(c *CPU, mem *memory.Memory, cycles *int, addrFn addrFn, val uint8) {
	addr := addrFn(c, mem, cycles)
	mem.Write(addr, val)
	*cycles--
}

// rmwOperand implements the read-modify-write sequence shared by INC/DEC/
// ASL/LSR/ROL/ROR's memory forms: read the old value, write it back
// unchanged (the real hardware does this dummy write while it's computing
// the new value), then write the transformed value. op is responsible for
// any flag side effects beyond Z/N (e.g. Carry for shifts); Z/N are always
// set from the final result per spec.
func rmwOperand(c *CPU, mem *memory.Memory, cycles *int, addrFn addrFn, op func(uint8) uint8) {
	addr := addrFn(c, mem, cycles)
	old := mem.Read(addr)
	*cycles--
	mem.Write(addr, old)
	*cycles--
	result := op(old)
	mem.Write(addr, result)
	*cycles--
	c.zeroNegativeCheck(result)
}

// pushByte pushes val onto the stack and decrements SP (wraps mod 256).
func pushByte(c *CPU, mem *memory.Memory, cycles *int, val uint8) {
	mem.Write(0x0100|uint16(c.SP), val)
	c.SP--
	*cycles--
}

// pullByte increments SP (wraps mod 256) and returns the byte there.
func pullByte(c *CPU, mem *memory.Memory, cycles *int) uint8 {
	c.SP++
	v := mem.Read(0x0100 | uint16(c.SP))
	*cycles--
	return v
}
