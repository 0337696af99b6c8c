package cpu

// PHA pushes A onto the stack.
func (c *CPU) PHA(Address) { c.push(c.A) }

// PLA pulls A from the stack.
func (c *CPU) PLA(Address) {
	c.A = c.pull()
	c.Status.UpdateZeroNegative(c.A)
}

// PHP pushes the status register with the Break pseudo-flag set, without
// modifying the live register.
func (c *CPU) PHP(Address) { c.push(c.Status.PushByte(true)) }

// PLP pulls the status register. Bit 5 is forced to 1 regardless of the
// pulled byte; Break has no live meaning beyond the stored bit.
func (c *CPU) PLP(Address) { c.Status.LoadFrom(c.pull()) }
