package cpu

import "github.com/sixtwofive/m6502/memory"

// adc builds an opFunc for ADC: sum = A + operand + C. Decimal mode is an
// explicit non-goal (the D flag is never consulted here); binary arithmetic
// always applies.
func adc(addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := fetchOperand(c, mem, cycles, addrFn)
		c.addWithCarry(v)
	}
}

// sbc builds an opFunc for SBC. SBC computes ADC against the
// one's-complemented operand - a standard 6502 ALU identity - so carry,
// overflow, zero, and negative all fall out of addWithCarry unchanged.
func sbc(addrFn addrFn) opFunc {
	return func(c *CPU, mem *memory.Memory, cycles *int) {
		v := fetchOperand(c, mem, cycles, addrFn)
		c.addWithCarry(v ^ 0xFF)
	}
}

// addWithCarry is the shared ALU core for ADC and SBC (SBC calls it with the
// operand's bitwise complement). Sets C from bit 8 of the 9-bit sum, V from
// signed overflow (operand and accumulator agree in sign, result disagrees),
// and Z/N from the 8-bit result.
func (c *CPU) addWithCarry(operand uint8) {
	carryIn := uint16(0)
	if c.GetCarry() {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(operand) + carryIn
	result := uint8(sum)

	c.SetCarry(sum > 0xFF)
	c.SetOverflow((c.A^result)&(operand^result)&Negative != 0)
	c.A = result
	c.zeroNegativeCheck(c.A)
}
