package cpu

import "github.com/sixtwofive/m6502/memory"

// brk pushes PC+1 and P|Break|Unused onto the stack, sets I, and loads PC
// from the IRQ vector. 7 cycles total including the opcode fetch Execute
// already charged.
func brk(c *CPU, mem *memory.Memory, cycles *int) {
	c.PC++ // the byte following the BRK opcode is a signature byte, skipped
	*cycles--

	pushByte(c, mem, cycles, uint8(c.PC>>8))
	pushByte(c, mem, cycles, uint8(c.PC))
	pushByte(c, mem, cycles, c.P|Break|Unused)

	lo := mem.Read(IRQVector)
	*cycles--
	hi := mem.Read(IRQVector + 1)
	*cycles--

	c.SetInterrupt(true)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// rti pulls P (bits 4/5 cleared, matching PLP) then PC as a word, with no
// +1 adjustment (unlike RTS, which returns to the instruction after a
// call; RTI returns to the exact interrupted instruction). 6 cycles total.
func rti(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles-- // dummy read of the byte following the opcode
	*cycles-- // increment-S internal cycle
	p := pullByte(c, mem, cycles)
	c.P = p &^ (Break | Unused)
	lo := pullByte(c, mem, cycles)
	hi := pullByte(c, mem, cycles)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// nop does nothing for 2 cycles.
func nop(c *CPU, mem *memory.Memory, cycles *int) {
	*cycles--
}
