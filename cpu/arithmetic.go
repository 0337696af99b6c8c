package cpu

import "sixfiveohtwo/mask"

// adcBinary performs standard two's-complement addition: A, the operand,
// and the incoming Carry, updating Carry, Overflow, Zero, and Negative.
func (c *CPU) adcBinary(m byte) {
	carry := uint16(0)
	if c.Status.Get(FlagCarry) {
		carry = 1
	}
	before := c.A
	sum := uint16(before) + uint16(m) + carry
	c.Status.UpdateOverflow(before, m, sum)
	c.Status.UpdateCarry(sum)
	c.A = byte(sum)
	c.Status.UpdateZeroNegative(c.A)
}

// adcDecimal performs packed-BCD addition one nibble at a time, carrying
// the ones digit into the tens digit on a per-digit basis rather than
// through the byte-wide binary sum. mask.LowNibble/HighNibble keep the
// digits in the caller's preferred shape (low digit shifted down, high
// digit left in place) for this arithmetic.
func (c *CPU) adcDecimal(m byte) {
	carry := 0
	if c.Status.Get(FlagCarry) {
		carry = 1
	}
	before := c.A
	lo := int(mask.LowNibble(before)) + int(mask.LowNibble(m)) + carry
	hi := int(mask.HighNibble(before)) + int(mask.HighNibble(m))
	if lo > 0x09 {
		lo = (lo + 0x06) & 0x0F
		hi += 0x10
	}
	if hi > 0x90 {
		hi += 0x60
	}
	sum := lo + hi
	c.Status.UpdateOverflow(before, m, uint16(sum))
	c.Status.SetTo(FlagCarry, sum > 0xFF)
	c.A = byte(sum)
	c.Status.UpdateZeroNegative(c.A)
}

// ADC adds the operand and Carry into A, routing through decimal or
// binary arithmetic according to the Decimal flag.
func (c *CPU) ADC(addr Address) {
	m := c.load(addr)
	if c.Status.Get(FlagDecimal) {
		c.adcDecimal(m)
	} else {
		c.adcBinary(m)
	}
}

// SBC is implemented as ADC against the complemented operand: M is
// one's-complemented, and in decimal mode additionally corrected by
// 0x66 to turn the ones-complement into a BCD nines-complement, before
// being run through the same adcBinary/adcDecimal routine ADC uses.
func (c *CPU) SBC(addr Address) {
	m := c.load(addr)
	complemented := m ^ 0xFF
	if c.Status.Get(FlagDecimal) {
		complemented -= 0x66
		c.adcDecimal(complemented)
	} else {
		c.adcBinary(complemented)
	}
}

// AND performs a bitwise AND of A with the operand.
func (c *CPU) AND(addr Address) {
	c.A &= c.load(addr)
	c.Status.UpdateZeroNegative(c.A)
}

// ORA performs a bitwise OR of A with the operand.
func (c *CPU) ORA(addr Address) {
	c.A |= c.load(addr)
	c.Status.UpdateZeroNegative(c.A)
}

// EOR performs a bitwise exclusive-OR of A with the operand.
func (c *CPU) EOR(addr Address) {
	c.A ^= c.load(addr)
	c.Status.UpdateZeroNegative(c.A)
}

// BIT tests bits of the operand against A without modifying A: Zero
// reflects A & M, while Negative and Overflow are copied directly from
// bits 7 and 6 of M.
func (c *CPU) BIT(addr Address) {
	m := c.load(addr)
	c.Status.UpdateZero(c.A & m)
	c.Status.SetTo(FlagNegative, m&0x80 != 0)
	c.Status.SetTo(FlagOverflow, m&0x40 != 0)
}

// compare implements the shared CMP/CPX/CPY behavior: a read-only
// subtraction reg - m whose only effect is on Carry, Zero, and Negative.
func (c *CPU) compare(reg, m byte) {
	c.Status.SetTo(FlagCarry, reg >= m)
	diff := reg - m
	c.Status.UpdateZeroNegative(diff)
}

// CMP compares A against the operand.
func (c *CPU) CMP(addr Address) { c.compare(c.A, c.load(addr)) }

// CPX compares X against the operand.
func (c *CPU) CPX(addr Address) { c.compare(c.X, c.load(addr)) }

// CPY compares Y against the operand.
func (c *CPU) CPY(addr Address) { c.compare(c.Y, c.load(addr)) }

// ASL shifts the operand left one bit, through Carry.
func (c *CPU) ASL(addr Address) {
	v := c.load(addr)
	c.Status.SetTo(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.store(addr, v)
	c.Status.UpdateZeroNegative(v)
}

// LSR shifts the operand right one bit, through Carry.
func (c *CPU) LSR(addr Address) {
	v := c.load(addr)
	c.Status.SetTo(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.store(addr, v)
	c.Status.UpdateZeroNegative(v)
}

// ROL rotates the operand left one bit, through Carry.
func (c *CPU) ROL(addr Address) {
	v := c.load(addr)
	oldCarry := c.Status.Get(FlagCarry)
	c.Status.SetTo(FlagCarry, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.store(addr, v)
	c.Status.UpdateZeroNegative(v)
}

// ROR rotates the operand right one bit, through Carry.
func (c *CPU) ROR(addr Address) {
	v := c.load(addr)
	oldCarry := c.Status.Get(FlagCarry)
	c.Status.SetTo(FlagCarry, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.store(addr, v)
	c.Status.UpdateZeroNegative(v)
}

// INC increments the operand in place.
func (c *CPU) INC(addr Address) {
	v := c.load(addr) + 1
	c.store(addr, v)
	c.Status.UpdateZeroNegative(v)
}

// DEC decrements the operand in place.
func (c *CPU) DEC(addr Address) {
	v := c.load(addr) - 1
	c.store(addr, v)
	c.Status.UpdateZeroNegative(v)
}

// INX increments X.
func (c *CPU) INX(Address) {
	c.X++
	c.Status.UpdateZeroNegative(c.X)
}

// INY increments Y.
func (c *CPU) INY(Address) {
	c.Y++
	c.Status.UpdateZeroNegative(c.Y)
}

// DEX decrements X.
func (c *CPU) DEX(Address) {
	c.X--
	c.Status.UpdateZeroNegative(c.X)
}

// DEY decrements Y.
func (c *CPU) DEY(Address) {
	c.Y--
	c.Status.UpdateZeroNegative(c.Y)
}
