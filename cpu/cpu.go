// Package cpu implements a cycle-accurate interpreter for the documented
// NMOS 6502 instruction set: the register file, status flags, the eleven
// addressing-mode address computations, and the fetch-decode-execute loop
// that drives them against a caller-supplied memory image and cycle budget.
package cpu

import (
	"fmt"

	"github.com/sixtwofive/m6502/disassemble"
	"github.com/sixtwofive/m6502/memory"
)

// Variant enumerates the CPU flavors this package knows how to construct.
// Only NMOS is implemented (decimal mode, undocumented opcodes, and the
// 65C02 variant are explicit non-goals) but an enum leaves room to add a
// CMOS/65C02 variant later without an API break.
type Variant int

const (
	// Unspecified is the zero value; New rejects it.
	Unspecified Variant = iota
	// NMOS is the documented NMOS 6502 instruction set.
	NMOS
)

// Status register bit layout, bit 7 down to bit 0.
const (
	Negative  = uint8(0x80)
	Overflow  = uint8(0x40)
	Unused    = uint8(0x20) // Set only in the byte pushed by BRK/PHP.
	Break     = uint8(0x10) // Only set when pushed by BRK/PHP.
	Decimal   = uint8(0x08)
	Interrupt = uint8(0x04)
	Zero      = uint8(0x02)
	Carry     = uint8(0x01)
)

// Vectors are the fixed memory locations the CPU loads PC from.
const (
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// CPU is the complete architectural state of a 6502: registers, flags, and
// program counter. It holds no reference to memory - every operation that
// touches the bus takes a *memory.Memory explicitly, matching the
// synchronous, single-entry-point contract described in the interpreter's
// concurrency model (no state is shared between CPU and memory except for
// the duration of a single call).
type CPU struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	P  uint8

	variant Variant
}

// InvalidState represents an internal precondition failure - reaching this
// indicates a bug in this package, not in the program being emulated.
type InvalidState struct {
	Reason string
}

func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// IllegalOpcode is returned by Execute when it encounters a byte that does
// not correspond to a documented opcode. The interpreter has already
// consumed the fetch cycle for this byte but performs no further action.
type IllegalOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%.2X at PC 0x%.4X (%s)", e.Opcode, e.PC, disassemble.Mnemonic(e.Opcode))
}

// New creates a CPU of the given variant. The returned CPU is not yet
// reset; call Reset before Execute.
func New(v Variant) (*CPU, error) {
	if v <= Unspecified || v > NMOS {
		return nil, InvalidState{Reason: fmt.Sprintf("unknown cpu variant %d", v)}
	}
	return &CPU{variant: v}, nil
}

// Reset resets the CPU using the default reset vector (0xFFFC) and zeroes
// memory.
func (c *CPU) Reset(mem *memory.Memory) {
	c.ResetTo(ResetVector, mem)
}

// ResetTo resets the CPU as Reset does, but loads PC from the word at the
// given vector address instead of the hardware default. The vector word is
// read before memory is zeroed, so callers write it before ResetTo and
// write their program after it.
func (c *CPU) ResetTo(vector uint16, mem *memory.Memory) {
	lo := mem.Read(vector)
	hi := mem.Read(vector + 1)
	mem.Initialise()
	c.SP = 0xFF
	c.A, c.X, c.Y = 0, 0, 0
	c.P = 0
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// LoadPrg accepts a byte block whose first two bytes are the little-endian
// load address, copies the remaining bytes to that address in mem, and
// returns the load address (or 0 if the block is too short to contain a
// header).
func LoadPrg(prg []byte, mem *memory.Memory) uint16 {
	if len(prg) < 2 {
		return 0
	}
	addr := uint16(prg[0]) | uint16(prg[1])<<8
	for i, b := range prg[2:] {
		mem.Write(addr+uint16(i), b)
	}
	return addr
}

// PrintStatus prints a diagnostic dump of the processor's architectural
// state to stdout.
func (c *CPU) PrintStatus() {
	fmt.Printf("PC: 0x%.4X SP: 0x%.2X A: 0x%.2X X: 0x%.2X Y: 0x%.2X P: 0x%.2X [%s]\n",
		c.PC, c.SP, c.A, c.X, c.Y, c.P, c.flagString())
}

func (c *CPU) flagString() string {
	bit := func(mask uint8, ch byte) byte {
		if c.P&mask != 0 {
			return ch
		}
		return '-'
	}
	return string([]byte{
		bit(Negative, 'N'),
		bit(Overflow, 'V'),
		'-',
		bit(Break, 'B'),
		bit(Decimal, 'D'),
		bit(Interrupt, 'I'),
		bit(Zero, 'Z'),
		bit(Carry, 'C'),
	})
}

// Execute runs instructions against mem until the cycle budget is
// exhausted (or would go negative mid-instruction - the instruction that
// started is always completed), returning the number of cycles actually
// consumed. The only error Execute can return is IllegalOpcode; a budget
// underrun is not an error (the caller observes it via the returned count
// exceeding the budget it supplied).
func (c *CPU) Execute(budget int, mem *memory.Memory) (int, error) {
	remaining := budget
	for remaining > 0 {
		pc := c.PC
		op := mem.Read(c.PC)
		c.PC++
		remaining--

		handler := dispatchTable[op]
		if handler == nil {
			return budget - remaining, IllegalOpcode{Opcode: op, PC: pc}
		}
		handler(c, mem, &remaining)
	}
	return budget - remaining, nil
}

// Flag accessors. These and the bit constants above are the only paths
// allowed to touch P, so the packed byte and the "named flag" view can
// never drift apart.

func (c *CPU) flag(mask uint8) bool { return c.P&mask != 0 }

func (c *CPU) setFlag(mask uint8, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) GetCarry() bool     { return c.flag(Carry) }
func (c *CPU) SetCarry(v bool)    { c.setFlag(Carry, v) }
func (c *CPU) GetZero() bool      { return c.flag(Zero) }
func (c *CPU) SetZero(v bool)     { c.setFlag(Zero, v) }
func (c *CPU) GetInterrupt() bool { return c.flag(Interrupt) }
func (c *CPU) SetInterrupt(v bool) { c.setFlag(Interrupt, v) }
func (c *CPU) GetDecimal() bool   { return c.flag(Decimal) }
func (c *CPU) SetDecimal(v bool)  { c.setFlag(Decimal, v) }
func (c *CPU) GetBreak() bool     { return c.flag(Break) }
func (c *CPU) GetOverflow() bool  { return c.flag(Overflow) }
func (c *CPU) SetOverflow(v bool) { c.setFlag(Overflow, v) }
func (c *CPU) GetNegative() bool  { return c.flag(Negative) }
func (c *CPU) SetNegative(v bool) { c.setFlag(Negative, v) }

// zeroCheck sets Z from the given result byte.
func (c *CPU) zeroCheck(v uint8) { c.SetZero(v == 0) }

// negativeCheck sets N from the given result byte's bit 7.
func (c *CPU) negativeCheck(v uint8) { c.SetNegative(v&Negative != 0) }

// zeroNegativeCheck sets both Z and N from v, the common load/transfer/
// inc-dec/shift discipline.
func (c *CPU) zeroNegativeCheck(v uint8) {
	c.zeroCheck(v)
	c.negativeCheck(v)
}
