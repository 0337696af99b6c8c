package cpu

// LDA loads A from the operand.
func (c *CPU) LDA(addr Address) {
	c.A = c.load(addr)
	c.Status.UpdateZeroNegative(c.A)
}

// LDX loads X from the operand.
func (c *CPU) LDX(addr Address) {
	c.X = c.load(addr)
	c.Status.UpdateZeroNegative(c.X)
}

// LDY loads Y from the operand.
func (c *CPU) LDY(addr Address) {
	c.Y = c.load(addr)
	c.Status.UpdateZeroNegative(c.Y)
}

// STA stores A to the operand address. Flags are unaffected.
func (c *CPU) STA(addr Address) { c.store(addr, c.A) }

// STX stores X to the operand address. Flags are unaffected.
func (c *CPU) STX(addr Address) { c.store(addr, c.X) }

// STY stores Y to the operand address. Flags are unaffected.
func (c *CPU) STY(addr Address) { c.store(addr, c.Y) }

// TAX transfers A into X.
func (c *CPU) TAX(Address) {
	c.X = c.A
	c.Status.UpdateZeroNegative(c.X)
}

// TAY transfers A into Y.
func (c *CPU) TAY(Address) {
	c.Y = c.A
	c.Status.UpdateZeroNegative(c.Y)
}

// TXA transfers X into A.
func (c *CPU) TXA(Address) {
	c.A = c.X
	c.Status.UpdateZeroNegative(c.A)
}

// TYA transfers Y into A.
func (c *CPU) TYA(Address) {
	c.A = c.Y
	c.Status.UpdateZeroNegative(c.A)
}

// TSX transfers SP into X.
func (c *CPU) TSX(Address) {
	c.X = c.SP
	c.Status.UpdateZeroNegative(c.X)
}

// TXS transfers X into SP. Flags are unaffected.
func (c *CPU) TXS(Address) { c.SP = c.X }
