package cpu

import "github.com/sixtwofive/m6502/memory"

// addrFn computes an effective 16-bit address for one addressing mode,
// advancing PC past any operand bytes and charging the address-compute-only
// cycles the mode calls for. The final operand read/write (and the extra
// cycle that goes with it) is charged by the instruction-class helper that
// calls the addrFn, not here - each bus access decrements the cycle counter
// by reference as it happens, rather than charging a flat total up front.
type addrFn func(c *CPU, mem *memory.Memory, cycles *int) uint16

// addrImmediate returns the address of the operand byte itself (PC, before
// advancing past it). It charges no cycles directly: the single cycle an
// immediate operand costs is charged by the caller's final-read step, since
// the operand fetch is really just a regular instruction byte read.
func addrImmediate(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	addr := c.PC
	c.PC++
	return addr
}

// addrZeroPage reads the next byte as an 8-bit zero-page address.
func addrZeroPage(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	b := mem.Read(c.PC)
	c.PC++
	*cycles--
	return uint16(b)
}

// addrZeroPageX reads the next byte and adds X, wrapping within page zero.
func addrZeroPageX(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return addrZeroPageIndexed(c, mem, cycles, c.X)
}

// addrZeroPageY reads the next byte and adds Y, wrapping within page zero.
func addrZeroPageY(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return addrZeroPageIndexed(c, mem, cycles, c.Y)
}

func addrZeroPageIndexed(c *CPU, mem *memory.Memory, cycles *int, reg uint8) uint16 {
	b := mem.Read(c.PC)
	c.PC++
	*cycles--
	*cycles-- // the add-and-wrap step is its own bus cycle on real hardware
	return uint16(b + reg)
}

// addrAbsolute reads the next two bytes little-endian as a 16-bit address.
func addrAbsolute(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	lo := mem.Read(c.PC)
	c.PC++
	*cycles--
	hi := mem.Read(c.PC)
	c.PC++
	*cycles--
	return uint16(hi)<<8 | uint16(lo)
}

// absoluteIndexed computes base+reg, charging the 2-cycle address-fetch
// cost plus 1 more if forced or if the addition crossed a page boundary.
func absoluteIndexed(c *CPU, mem *memory.Memory, cycles *int, reg uint8, forced bool) uint16 {
	base := addrAbsolute(c, mem, cycles)
	eff := base + uint16(reg)
	crossed := (base & 0xFF00) != (eff & 0xFF00)
	if forced || crossed {
		*cycles--
	}
	return eff
}

// addrAbsoluteX is the natural (non-forced) Absolute,X mode: loads and other
// pure-read instructions use this and save a cycle when no page is crossed.
func addrAbsoluteX(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return absoluteIndexed(c, mem, cycles, c.X, false)
}

// addrAbsoluteXForced always charges the extra cycle: stores and
// read-modify-write instructions always perform the bus access on the final
// page regardless of whether indexing actually crossed one.
func addrAbsoluteXForced(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return absoluteIndexed(c, mem, cycles, c.X, true)
}

// addrAbsoluteY is the natural (non-forced) Absolute,Y mode.
func addrAbsoluteY(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return absoluteIndexed(c, mem, cycles, c.Y, false)
}

// addrAbsoluteYForced always charges the extra cycle (used by STA a,y).
func addrAbsoluteYForced(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return absoluteIndexed(c, mem, cycles, c.Y, true)
}

// addrIndirectX reads a zero-page pointer at (operand+X) and dereferences
// it little-endian to form the effective address. Always 4 address-compute
// cycles; there is no page-crossing ambiguity since the pointer itself
// always lives in page zero.
func addrIndirectX(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	b := mem.Read(c.PC)
	c.PC++
	*cycles--
	ptr := b + c.X
	*cycles-- // the add-and-wrap step
	lo := mem.Read(uint16(ptr))
	*cycles--
	hi := mem.Read(uint16(ptr + 1))
	*cycles--
	return uint16(hi)<<8 | uint16(lo)
}

// indirectY computes the (d),y effective address, charging 3 cycles for the
// pointer dereference plus 1 more if forced or if adding Y crossed a page.
func indirectY(c *CPU, mem *memory.Memory, cycles *int, forced bool) uint16 {
	ptr := mem.Read(c.PC)
	c.PC++
	*cycles--
	lo := mem.Read(uint16(ptr))
	*cycles--
	hi := mem.Read(uint16(ptr + 1))
	*cycles--
	base := uint16(hi)<<8 | uint16(lo)
	eff := base + uint16(c.Y)
	crossed := (base & 0xFF00) != (eff & 0xFF00)
	if forced || crossed {
		*cycles--
	}
	return eff
}

// addrIndirectY is the natural (non-forced) (Indirect),Y mode.
func addrIndirectY(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return indirectY(c, mem, cycles, false)
}

// addrIndirectYForced always charges the extra cycle (used by STA (d),y).
func addrIndirectYForced(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	return indirectY(c, mem, cycles, true)
}

// addrIndirect implements the absolute-indirect addressing JMP (a) uses,
// including the famous page-boundary hardware bug: if the pointer's low
// byte is 0xFF, the high byte of the target is read from 0xXX00 on the same
// page rather than rolling over into the next one. This is reproduced
// deliberately: it is documented, well-known NMOS 6502 hardware behavior,
// and a cycle-accurate core should match real silicon rather than silently
// "fix" it.
func addrIndirect(c *CPU, mem *memory.Memory, cycles *int) uint16 {
	ptr := addrAbsolute(c, mem, cycles)
	lo := mem.Read(ptr)
	*cycles--
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := mem.Read(hiAddr)
	*cycles--
	return uint16(hi)<<8 | uint16(lo)
}
