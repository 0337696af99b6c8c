package cpu

// interruptKind distinguishes the three entry paths that converge on the
// same push-status-and-vector sequence.
type interruptKind int

const (
	kindIRQ interruptKind = iota
	kindNMI
	kindBRK
)

// enterInterrupt implements the shared BRK/IRQ/NMI entry sequence: push
// PC, push status with Break set only for a software BRK, raise
// Interrupt Disable, and load PC from the appropriate vector.
//
// No extra PC adjustment is made here for BRK: Step's ordinary opcode
// fetch already advanced PC past BRK's one-byte opcode before this runs,
// which is exactly the "signature byte is skipped" effect; IRQ and NMI
// are serviced before any opcode fetch, so PC is untouched at that
// point and needs no adjustment either.
func (c *CPU) enterInterrupt(kind interruptKind) {
	c.pushPC(c.PC)
	c.push(c.Status.PushByte(kind == kindBRK))
	c.Status.Set(FlagInterruptDisable)
	vector := vectorIRQ
	if kind == kindNMI {
		vector = vectorNMI
	}
	c.PC = c.readWord(vector)
}

// BRK forces a software interrupt.
func (c *CPU) BRK(Address) { c.enterInterrupt(kindBRK) }

// RTI returns from an interrupt: pull status (forcing Reserved to 1 and
// discarding the pulled Break bit's live significance), then pull PC
// with no +1 adjustment, unlike RTS.
func (c *CPU) RTI(Address) {
	c.Status.LoadFrom(c.pull())
	c.PC = c.pullPC()
}

// CLC clears Carry.
func (c *CPU) CLC(Address) { c.Status.Clear(FlagCarry) }

// SEC sets Carry.
func (c *CPU) SEC(Address) { c.Status.Set(FlagCarry) }

// CLD clears Decimal.
func (c *CPU) CLD(Address) { c.Status.Clear(FlagDecimal) }

// SED sets Decimal.
func (c *CPU) SED(Address) { c.Status.Set(FlagDecimal) }

// CLI clears Interrupt Disable.
func (c *CPU) CLI(Address) { c.Status.Clear(FlagInterruptDisable) }

// SEI sets Interrupt Disable.
func (c *CPU) SEI(Address) { c.Status.Set(FlagInterruptDisable) }

// CLV clears Overflow.
func (c *CPU) CLV(Address) { c.Status.Clear(FlagOverflow) }

// NOP does nothing.
func (c *CPU) NOP(Address) {}

// Step services a pending interrupt if one is latched, otherwise fetches,
// decodes, and executes exactly one instruction. NMI takes priority over
// IRQ; IRQ is serviced only while Interrupt Disable is clear.
//
// It returns a *DecodeError if the fetched opcode byte has no entry in
// the decode table; the CPU's PC and registers are left exactly as they
// were at the failed fetch.
func (c *CPU) Step() error {
	if c.nmi {
		c.nmi = false
		c.enterInterrupt(kindNMI)
		c.Logger.Logf("NMI serviced, PC now %#04x", c.PC)
		return nil
	}
	if c.irq && !c.Status.Get(FlagInterruptDisable) {
		c.enterInterrupt(kindIRQ)
		c.Logger.Logf("IRQ serviced, PC now %#04x", c.PC)
		return nil
	}

	opcodePC := c.PC
	b := c.Memory.Read(c.PC)
	c.PC++

	op, legal := decodeTable[b]
	if !legal {
		c.PC = opcodePC
		err := &DecodeError{Opcode: b, PC: opcodePC}
		c.Logger.Logf("decode error: %v", err)
		return err
	}

	addr := c.resolve(op.Mode)
	op.Exec(c, addr)
	return nil
}

// Run steps the CPU until Step returns an error (typically an illegal
// opcode used as a deliberate halt).
func (c *CPU) Run() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}
