package cpu

// branchIf adds the resolved displacement to PC iff cond holds. Since
// addr.Value already holds the two's-complement displacement stored in a
// uint16, plain wrapping addition implements signed addition modulo
// 2^16 regardless of the displacement's sign.
func (c *CPU) branchIf(addr Address, cond bool) {
	if cond {
		c.PC += addr.Value
	}
}

// BCC branches if Carry is clear.
func (c *CPU) BCC(addr Address) { c.branchIf(addr, !c.Status.Get(FlagCarry)) }

// BCS branches if Carry is set.
func (c *CPU) BCS(addr Address) { c.branchIf(addr, c.Status.Get(FlagCarry)) }

// BEQ branches if Zero is set.
func (c *CPU) BEQ(addr Address) { c.branchIf(addr, c.Status.Get(FlagZero)) }

// BNE branches if Zero is clear.
func (c *CPU) BNE(addr Address) { c.branchIf(addr, !c.Status.Get(FlagZero)) }

// BMI branches if Negative is set.
func (c *CPU) BMI(addr Address) { c.branchIf(addr, c.Status.Get(FlagNegative)) }

// BPL branches if Negative is clear.
func (c *CPU) BPL(addr Address) { c.branchIf(addr, !c.Status.Get(FlagNegative)) }

// BVC branches if Overflow is clear.
func (c *CPU) BVC(addr Address) { c.branchIf(addr, !c.Status.Get(FlagOverflow)) }

// BVS branches if Overflow is set.
func (c *CPU) BVS(addr Address) { c.branchIf(addr, c.Status.Get(FlagOverflow)) }

// JMP sets PC to the resolved address directly (Absolute or Indirect,
// the latter carrying the page-wrap hardware bug already baked into
// resolve).
func (c *CPU) JMP(addr Address) { c.PC = addr.Value }

// JSR pushes the address of the last byte of the JSR instruction (one
// less than the address of the following instruction, which is what PC
// already holds after the Absolute operand has been consumed) and jumps
// to the operand address.
func (c *CPU) JSR(addr Address) {
	c.pushPC(c.PC - 1)
	c.PC = addr.Value
}

// RTS pulls the return address and resumes one byte past it.
func (c *CPU) RTS(Address) {
	c.PC = c.pullPC() + 1
}
