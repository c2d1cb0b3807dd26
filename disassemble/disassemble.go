// Package disassemble renders documented 6502 instructions as text, for
// diagnostic tools and error messages. It does not execute anything: it
// only knows how many operand bytes each documented opcode takes and how to
// format them.
package disassemble

import (
	"fmt"

	"github.com/sixtwofive/m6502/memory"
)

const (
	modeImplied = iota
	modeAccumulator
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeRelative
)

type entry struct {
	mnemonic string
	mode     int
}

// table maps each documented opcode byte to its mnemonic and addressing
// mode. Bytes not present are undocumented/illegal opcodes; a lookup against
// the zero value always yields "???" via Mnemonic.
var table = map[uint8]entry{
	0xA9: {"LDA", modeImmediate}, 0xA5: {"LDA", modeZP}, 0xB5: {"LDA", modeZPX},
	0xAD: {"LDA", modeAbsolute}, 0xBD: {"LDA", modeAbsoluteX}, 0xB9: {"LDA", modeAbsoluteY},
	0xA1: {"LDA", modeIndirectX}, 0xB1: {"LDA", modeIndirectY},

	0xA2: {"LDX", modeImmediate}, 0xA6: {"LDX", modeZP}, 0xB6: {"LDX", modeZPY},
	0xAE: {"LDX", modeAbsolute}, 0xBE: {"LDX", modeAbsoluteY},

	0xA0: {"LDY", modeImmediate}, 0xA4: {"LDY", modeZP}, 0xB4: {"LDY", modeZPX},
	0xAC: {"LDY", modeAbsolute}, 0xBC: {"LDY", modeAbsoluteX},

	0x85: {"STA", modeZP}, 0x95: {"STA", modeZPX}, 0x8D: {"STA", modeAbsolute},
	0x9D: {"STA", modeAbsoluteX}, 0x99: {"STA", modeAbsoluteY},
	0x81: {"STA", modeIndirectX}, 0x91: {"STA", modeIndirectY},

	0x86: {"STX", modeZP}, 0x96: {"STX", modeZPY}, 0x8E: {"STX", modeAbsolute},
	0x84: {"STY", modeZP}, 0x94: {"STY", modeZPX}, 0x8C: {"STY", modeAbsolute},

	0xAA: {"TAX", modeImplied}, 0xA8: {"TAY", modeImplied},
	0x8A: {"TXA", modeImplied}, 0x98: {"TYA", modeImplied},
	0xBA: {"TSX", modeImplied}, 0x9A: {"TXS", modeImplied},
	0x48: {"PHA", modeImplied}, 0x68: {"PLA", modeImplied},
	0x08: {"PHP", modeImplied}, 0x28: {"PLP", modeImplied},

	0x20: {"JSR", modeAbsolute}, 0x60: {"RTS", modeImplied},
	0x4C: {"JMP", modeAbsolute}, 0x6C: {"JMP", modeIndirect},

	0x29: {"AND", modeImmediate}, 0x25: {"AND", modeZP}, 0x35: {"AND", modeZPX},
	0x2D: {"AND", modeAbsolute}, 0x3D: {"AND", modeAbsoluteX}, 0x39: {"AND", modeAbsoluteY},
	0x21: {"AND", modeIndirectX}, 0x31: {"AND", modeIndirectY},

	0x09: {"ORA", modeImmediate}, 0x05: {"ORA", modeZP}, 0x15: {"ORA", modeZPX},
	0x0D: {"ORA", modeAbsolute}, 0x1D: {"ORA", modeAbsoluteX}, 0x19: {"ORA", modeAbsoluteY},
	0x01: {"ORA", modeIndirectX}, 0x11: {"ORA", modeIndirectY},

	0x49: {"EOR", modeImmediate}, 0x45: {"EOR", modeZP}, 0x55: {"EOR", modeZPX},
	0x4D: {"EOR", modeAbsolute}, 0x5D: {"EOR", modeAbsoluteX}, 0x59: {"EOR", modeAbsoluteY},
	0x41: {"EOR", modeIndirectX}, 0x51: {"EOR", modeIndirectY},

	0x24: {"BIT", modeZP}, 0x2C: {"BIT", modeAbsolute},

	0xE8: {"INX", modeImplied}, 0xC8: {"INY", modeImplied},
	0xCA: {"DEX", modeImplied}, 0x88: {"DEY", modeImplied},

	0xC6: {"DEC", modeZP}, 0xD6: {"DEC", modeZPX}, 0xCE: {"DEC", modeAbsolute}, 0xDE: {"DEC", modeAbsoluteX},
	0xE6: {"INC", modeZP}, 0xF6: {"INC", modeZPX}, 0xEE: {"INC", modeAbsolute}, 0xFE: {"INC", modeAbsoluteX},

	0xF0: {"BEQ", modeRelative}, 0xD0: {"BNE", modeRelative},
	0xB0: {"BCS", modeRelative}, 0x90: {"BCC", modeRelative},
	0x30: {"BMI", modeRelative}, 0x10: {"BPL", modeRelative},
	0x70: {"BVS", modeRelative}, 0x50: {"BVC", modeRelative},

	0x18: {"CLC", modeImplied}, 0x38: {"SEC", modeImplied},
	0xD8: {"CLD", modeImplied}, 0xF8: {"SED", modeImplied},
	0x58: {"CLI", modeImplied}, 0x78: {"SEI", modeImplied},
	0xB8: {"CLV", modeImplied},

	0x69: {"ADC", modeImmediate}, 0x65: {"ADC", modeZP}, 0x75: {"ADC", modeZPX},
	0x6D: {"ADC", modeAbsolute}, 0x7D: {"ADC", modeAbsoluteX}, 0x79: {"ADC", modeAbsoluteY},
	0x61: {"ADC", modeIndirectX}, 0x71: {"ADC", modeIndirectY},

	0xE9: {"SBC", modeImmediate}, 0xE5: {"SBC", modeZP}, 0xF5: {"SBC", modeZPX},
	0xED: {"SBC", modeAbsolute}, 0xFD: {"SBC", modeAbsoluteX}, 0xF9: {"SBC", modeAbsoluteY},
	0xE1: {"SBC", modeIndirectX}, 0xF1: {"SBC", modeIndirectY},

	0xC9: {"CMP", modeImmediate}, 0xC5: {"CMP", modeZP}, 0xD5: {"CMP", modeZPX},
	0xCD: {"CMP", modeAbsolute}, 0xDD: {"CMP", modeAbsoluteX}, 0xD9: {"CMP", modeAbsoluteY},
	0xC1: {"CMP", modeIndirectX}, 0xD1: {"CMP", modeIndirectY},

	0xE0: {"CPX", modeImmediate}, 0xE4: {"CPX", modeZP}, 0xEC: {"CPX", modeAbsolute},
	0xC0: {"CPY", modeImmediate}, 0xC4: {"CPY", modeZP}, 0xCC: {"CPY", modeAbsolute},

	0x0A: {"ASL", modeAccumulator}, 0x06: {"ASL", modeZP}, 0x16: {"ASL", modeZPX},
	0x0E: {"ASL", modeAbsolute}, 0x1E: {"ASL", modeAbsoluteX},

	0x4A: {"LSR", modeAccumulator}, 0x46: {"LSR", modeZP}, 0x56: {"LSR", modeZPX},
	0x4E: {"LSR", modeAbsolute}, 0x5E: {"LSR", modeAbsoluteX},

	0x2A: {"ROL", modeAccumulator}, 0x26: {"ROL", modeZP}, 0x36: {"ROL", modeZPX},
	0x2E: {"ROL", modeAbsolute}, 0x3E: {"ROL", modeAbsoluteX},

	0x6A: {"ROR", modeAccumulator}, 0x66: {"ROR", modeZP}, 0x76: {"ROR", modeZPX},
	0x6E: {"ROR", modeAbsolute}, 0x7E: {"ROR", modeAbsoluteX},

	0xEA: {"NOP", modeImplied}, 0x00: {"BRK", modeImplied}, 0x40: {"RTI", modeImplied},
}

// Mnemonic returns the three-letter name for a documented opcode, or "???"
// for anything not in table.
func Mnemonic(opcode uint8) string {
	e, ok := table[opcode]
	if !ok {
		return "???"
	}
	return e.mnemonic
}

// Step disassembles the instruction at pc, returning its text form and the
// number of bytes (including the opcode) it occupies. It always reads the
// two bytes after pc, whatever the instruction's length; addresses past
// 0xFFFF wrap to 0x0000. It does not follow
// jumps or branches; a JMP followed by data disassembles as JMP followed by
// whatever the data happens to decode as.
func Step(pc uint16, mem *memory.Memory) (string, int) {
	opcode := mem.Read(pc)
	operand1 := mem.Read(pc + 1)
	operand2 := mem.Read(pc + 2)
	rel := uint16(int16(int8(operand1)))

	e, ok := table[opcode]
	if !ok {
		return fmt.Sprintf("%.4X %.2X      ??? (illegal)", pc, opcode), 1
	}

	count := 2
	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	switch e.mode {
	case modeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", operand1, e.mnemonic, operand1)
	case modeZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", operand1, e.mnemonic, operand1)
	case modeZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", operand1, e.mnemonic, operand1)
	case modeZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", operand1, e.mnemonic, operand1)
	case modeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", operand1, e.mnemonic, operand1)
	case modeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", operand1, e.mnemonic, operand1)
	case modeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", operand1, operand2, e.mnemonic, operand2, operand1)
		count++
	case modeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", operand1, operand2, e.mnemonic, operand2, operand1)
		count++
	case modeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", operand1, operand2, e.mnemonic, operand2, operand1)
		count++
	case modeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", operand1, operand2, e.mnemonic, operand2, operand1)
		count++
	case modeAccumulator:
		out += fmt.Sprintf("        %s A         ", e.mnemonic)
		count--
	case modeImplied:
		out += fmt.Sprintf("        %s           ", e.mnemonic)
		count--
	case modeRelative:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", operand1, e.mnemonic, operand1, pc+rel+2)
	default:
		panic(fmt.Sprintf("disassemble: invalid mode %d for opcode 0x%.2X", e.mode, opcode))
	}
	return out, count
}
