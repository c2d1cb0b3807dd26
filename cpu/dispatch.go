package cpu

import "github.com/sixtwofive/m6502/memory"

// opFunc is the shape of every instruction handler: given the CPU, the
// memory it operates against, and the remaining cycle budget (decremented
// as the instruction consumes bus cycles), perform the instruction's
// complete effect. The opcode fetch itself is charged by Execute before
// dispatch, so handlers charge only the cycles beyond that first one.
type opFunc func(c *CPU, mem *memory.Memory, cycles *int)

// dispatchTable maps each of the 256 possible opcode bytes to its handler.
// A nil entry is an undocumented/illegal opcode; Execute turns encountering
// one into an IllegalOpcode error. Built once at package init from the
// documented NMOS instruction set.
var dispatchTable [256]opFunc

func init() {
	// Loads.
	dispatchTable[0xA9] = load(regA, addrImmediate)
	dispatchTable[0xA5] = load(regA, addrZeroPage)
	dispatchTable[0xB5] = load(regA, addrZeroPageX)
	dispatchTable[0xAD] = load(regA, addrAbsolute)
	dispatchTable[0xBD] = load(regA, addrAbsoluteX)
	dispatchTable[0xB9] = load(regA, addrAbsoluteY)
	dispatchTable[0xA1] = load(regA, addrIndirectX)
	dispatchTable[0xB1] = load(regA, addrIndirectY)

	dispatchTable[0xA2] = load(regX, addrImmediate)
	dispatchTable[0xA6] = load(regX, addrZeroPage)
	dispatchTable[0xB6] = load(regX, addrZeroPageY)
	dispatchTable[0xAE] = load(regX, addrAbsolute)
	dispatchTable[0xBE] = load(regX, addrAbsoluteY)

	dispatchTable[0xA0] = load(regY, addrImmediate)
	dispatchTable[0xA4] = load(regY, addrZeroPage)
	dispatchTable[0xB4] = load(regY, addrZeroPageX)
	dispatchTable[0xAC] = load(regY, addrAbsolute)
	dispatchTable[0xBC] = load(regY, addrAbsoluteX)

	// Stores. Indexed/indirect stores always pay the forced final-page cost.
	dispatchTable[0x85] = store(regA, addrZeroPage)
	dispatchTable[0x95] = store(regA, addrZeroPageX)
	dispatchTable[0x8D] = store(regA, addrAbsolute)
	dispatchTable[0x9D] = store(regA, addrAbsoluteXForced)
	dispatchTable[0x99] = store(regA, addrAbsoluteYForced)
	dispatchTable[0x81] = store(regA, addrIndirectX)
	dispatchTable[0x91] = store(regA, addrIndirectYForced)

	dispatchTable[0x86] = store(regX, addrZeroPage)
	dispatchTable[0x96] = store(regX, addrZeroPageY)
	dispatchTable[0x8E] = store(regX, addrAbsolute)

	dispatchTable[0x84] = store(regY, addrZeroPage)
	dispatchTable[0x94] = store(regY, addrZeroPageX)
	dispatchTable[0x8C] = store(regY, addrAbsolute)

	// Register transfers and stack operations.
	dispatchTable[0xAA] = transfer(regA, regX)
	dispatchTable[0xA8] = transfer(regA, regY)
	dispatchTable[0x8A] = transfer(regX, regA)
	dispatchTable[0x98] = transfer(regY, regA)
	dispatchTable[0xBA] = iTSX
	dispatchTable[0x9A] = iTXS
	dispatchTable[0x48] = iPHA
	dispatchTable[0x68] = iPLA
	dispatchTable[0x08] = iPHP
	dispatchTable[0x28] = iPLP

	// Jumps and calls.
	dispatchTable[0x20] = jsr
	dispatchTable[0x60] = rts
	dispatchTable[0x4C] = jmpAbsolute()
	dispatchTable[0x6C] = jmpIndirect()

	// Logical.
	dispatchTable[0x29] = logical(andOp, addrImmediate)
	dispatchTable[0x25] = logical(andOp, addrZeroPage)
	dispatchTable[0x35] = logical(andOp, addrZeroPageX)
	dispatchTable[0x2D] = logical(andOp, addrAbsolute)
	dispatchTable[0x3D] = logical(andOp, addrAbsoluteX)
	dispatchTable[0x39] = logical(andOp, addrAbsoluteY)
	dispatchTable[0x21] = logical(andOp, addrIndirectX)
	dispatchTable[0x31] = logical(andOp, addrIndirectY)

	dispatchTable[0x09] = logical(oraOp, addrImmediate)
	dispatchTable[0x05] = logical(oraOp, addrZeroPage)
	dispatchTable[0x15] = logical(oraOp, addrZeroPageX)
	dispatchTable[0x0D] = logical(oraOp, addrAbsolute)
	dispatchTable[0x1D] = logical(oraOp, addrAbsoluteX)
	dispatchTable[0x19] = logical(oraOp, addrAbsoluteY)
	dispatchTable[0x01] = logical(oraOp, addrIndirectX)
	dispatchTable[0x11] = logical(oraOp, addrIndirectY)

	dispatchTable[0x49] = logical(eorOp, addrImmediate)
	dispatchTable[0x45] = logical(eorOp, addrZeroPage)
	dispatchTable[0x55] = logical(eorOp, addrZeroPageX)
	dispatchTable[0x4D] = logical(eorOp, addrAbsolute)
	dispatchTable[0x5D] = logical(eorOp, addrAbsoluteX)
	dispatchTable[0x59] = logical(eorOp, addrAbsoluteY)
	dispatchTable[0x41] = logical(eorOp, addrIndirectX)
	dispatchTable[0x51] = logical(eorOp, addrIndirectY)

	dispatchTable[0x24] = bitTest(addrZeroPage)
	dispatchTable[0x2C] = bitTest(addrAbsolute)

	// Increments and decrements.
	dispatchTable[0xE8] = incDecReg(regX, 1)
	dispatchTable[0xC8] = incDecReg(regY, 1)
	dispatchTable[0xCA] = incDecReg(regX, 0xFF)
	dispatchTable[0x88] = incDecReg(regY, 0xFF)

	dispatchTable[0xC6] = incDecMem(0xFF, addrZeroPage)
	dispatchTable[0xD6] = incDecMem(0xFF, addrZeroPageX)
	dispatchTable[0xCE] = incDecMem(0xFF, addrAbsolute)
	dispatchTable[0xDE] = incDecMem(0xFF, addrAbsoluteXForced)

	dispatchTable[0xE6] = incDecMem(1, addrZeroPage)
	dispatchTable[0xF6] = incDecMem(1, addrZeroPageX)
	dispatchTable[0xEE] = incDecMem(1, addrAbsolute)
	dispatchTable[0xFE] = incDecMem(1, addrAbsoluteXForced)

	// Branches.
	dispatchTable[0xF0] = branch(zeroSet)
	dispatchTable[0xD0] = branch(zeroClear)
	dispatchTable[0xB0] = branch(carrySet)
	dispatchTable[0x90] = branch(carryClear)
	dispatchTable[0x30] = branch(negativeSet)
	dispatchTable[0x10] = branch(negativeClear)
	dispatchTable[0x50] = branch(overflowClear)
	dispatchTable[0x70] = branch(overflowSet)

	// Flag operations.
	dispatchTable[0x18] = setClearFlag(Carry, false)
	dispatchTable[0x38] = setClearFlag(Carry, true)
	dispatchTable[0xD8] = setClearFlag(Decimal, false)
	dispatchTable[0xF8] = setClearFlag(Decimal, true)
	dispatchTable[0x58] = setClearFlag(Interrupt, false)
	dispatchTable[0x78] = setClearFlag(Interrupt, true)
	dispatchTable[0xB8] = setClearFlag(Overflow, false)

	// Arithmetic.
	dispatchTable[0x69] = adc(addrImmediate)
	dispatchTable[0x65] = adc(addrZeroPage)
	dispatchTable[0x75] = adc(addrZeroPageX)
	dispatchTable[0x6D] = adc(addrAbsolute)
	dispatchTable[0x7D] = adc(addrAbsoluteX)
	dispatchTable[0x79] = adc(addrAbsoluteY)
	dispatchTable[0x61] = adc(addrIndirectX)
	dispatchTable[0x71] = adc(addrIndirectY)

	dispatchTable[0xE9] = sbc(addrImmediate)
	dispatchTable[0xE5] = sbc(addrZeroPage)
	dispatchTable[0xF5] = sbc(addrZeroPageX)
	dispatchTable[0xED] = sbc(addrAbsolute)
	dispatchTable[0xFD] = sbc(addrAbsoluteX)
	dispatchTable[0xF9] = sbc(addrAbsoluteY)
	dispatchTable[0xE1] = sbc(addrIndirectX)
	dispatchTable[0xF1] = sbc(addrIndirectY)

	// Compares.
	dispatchTable[0xC9] = compare(regA, addrImmediate)
	dispatchTable[0xC5] = compare(regA, addrZeroPage)
	dispatchTable[0xD5] = compare(regA, addrZeroPageX)
	dispatchTable[0xCD] = compare(regA, addrAbsolute)
	dispatchTable[0xDD] = compare(regA, addrAbsoluteX)
	dispatchTable[0xD9] = compare(regA, addrAbsoluteY)
	dispatchTable[0xC1] = compare(regA, addrIndirectX)
	dispatchTable[0xD1] = compare(regA, addrIndirectY)

	dispatchTable[0xE0] = compare(regX, addrImmediate)
	dispatchTable[0xE4] = compare(regX, addrZeroPage)
	dispatchTable[0xEC] = compare(regX, addrAbsolute)

	dispatchTable[0xC0] = compare(regY, addrImmediate)
	dispatchTable[0xC4] = compare(regY, addrZeroPage)
	dispatchTable[0xCC] = compare(regY, addrAbsolute)

	// Shifts and rotates.
	dispatchTable[0x0A] = shiftAcc((*CPU).asl)
	dispatchTable[0x06] = shiftMem((*CPU).asl, addrZeroPage)
	dispatchTable[0x16] = shiftMem((*CPU).asl, addrZeroPageX)
	dispatchTable[0x0E] = shiftMem((*CPU).asl, addrAbsolute)
	dispatchTable[0x1E] = shiftMem((*CPU).asl, addrAbsoluteXForced)

	dispatchTable[0x4A] = shiftAcc((*CPU).lsr)
	dispatchTable[0x46] = shiftMem((*CPU).lsr, addrZeroPage)
	dispatchTable[0x56] = shiftMem((*CPU).lsr, addrZeroPageX)
	dispatchTable[0x4E] = shiftMem((*CPU).lsr, addrAbsolute)
	dispatchTable[0x5E] = shiftMem((*CPU).lsr, addrAbsoluteXForced)

	dispatchTable[0x2A] = shiftAcc((*CPU).rol)
	dispatchTable[0x26] = shiftMem((*CPU).rol, addrZeroPage)
	dispatchTable[0x36] = shiftMem((*CPU).rol, addrZeroPageX)
	dispatchTable[0x2E] = shiftMem((*CPU).rol, addrAbsolute)
	dispatchTable[0x3E] = shiftMem((*CPU).rol, addrAbsoluteXForced)

	dispatchTable[0x6A] = shiftAcc((*CPU).ror)
	dispatchTable[0x66] = shiftMem((*CPU).ror, addrZeroPage)
	dispatchTable[0x76] = shiftMem((*CPU).ror, addrZeroPageX)
	dispatchTable[0x6E] = shiftMem((*CPU).ror, addrAbsolute)
	dispatchTable[0x7E] = shiftMem((*CPU).ror, addrAbsoluteXForced)

	// System.
	dispatchTable[0xEA] = nop
	dispatchTable[0x00] = brk
	dispatchTable[0x40] = rti
}
