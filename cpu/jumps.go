package cpu

import "github.com/sixtwofive/m6502/memory"

// jmpAbsolute builds an opFunc for JMP Absolute: PC <- the two-byte
// operand address. 3 cycles total (2 already charged fetching the
// address bytes via addrFn).
func jmpAbsolute() opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		c.PC = addrAbsolute(c, mem, cycles)
	}
}

// jmpIndirect builds an opFunc for JMP Indirect: PC <- the word stored at
// the pointer address, reproducing the page-wrap hardware bug in
// addrIndirect. 5 cycles total.
func jmpIndirect() opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		c.PC = addrIndirect(c, mem, cycles)
	}
}

// jsr pushes PC-1 (the address of the last byte of the JSR instruction) and
// jumps to the two-byte operand address. 6 cycles total including the
// opcode fetch Execute already charged.
func jsr(c *CPU, mem *memory.Memory, cycles *int) {
	lo := mem.Read(c.PC)
	c.PC++
	*cycles--
	*cycles-- // internal cycle before the stack pushes

	returnAddr := c.PC // points at the high address byte, i.e. PC-1 of the instruction end
	pushByte(c, mem, cycles, uint8(returnAddr>>8))
	pushByte(c, mem, cycles, uint8(returnAddr))

	hi := mem.Read(c.PC)
	c.PC++
	*cycles--

	c.PC = uint16(hi)<<8 | uint16(lo)
}

// rts pulls the return address from the stack and sets PC to that address
// plus one (undoing the PC-1 that JSR pushed). 6 cycles total.
func rts(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles-- // dummy read of the byte following the opcode
	*cycles-- // increment-S internal cycle
	lo := pullByte(c, mem, cycles)
	hi := pullByte(c, mem, cycles)
	c.PC = uint16(hi)<<8 | uint16(lo)
	*cycles-- // increment-PC internal cycle
	c.PC++
}
