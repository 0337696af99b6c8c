// Package cpu implements the MOS Technology 6502 microprocessor core: the
// register file, the addressing-mode resolver, the opcode decode table
// (keyed by byte, one entry per documented opcode), and the arithmetic/logic/branch/interrupt execution behind it.
//
// The core depends only on the mem.Memory interface; it owns no concrete
// RAM of its own.
package cpu

import "sixfiveohtwo/mem"

// Reset, NMI, and IRQ vector addresses (little-endian, low byte first).
const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE // shared with BRK
)

// CPU is the register file plus the memory it is wired to. It has no
// memory of its own beyond these handful of registers; all program and
// data bytes live behind Memory.
type CPU struct {
	Memory mem.Memory

	PC uint16 // 16-bit, wraps modulo 2^16
	SP byte   // logical address is 0x0100 | SP, wraps modulo 2^8
	A  byte
	X  byte
	Y  byte

	Status Status

	nmi bool // edge-triggered: host sets true, core clears on entry
	irq bool // level-triggered: host sets/clears directly

	Logger Logger
}

// New constructs a CPU wired to m and immediately performs a Reset, as a
// physical 6502 would on power-up.
func New(m mem.Memory) *CPU {
	c := &CPU{Memory: m, Logger: noopLogger{}}
	c.Reset()
	return c
}

// SetLogger attaches l to receive decode-abort and interrupt-service
// diagnostics. A nil Logger restores the default no-op implementation.
func (c *CPU) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	c.Logger = l
}

// Reset reinitializes registers the way a hardware reset line would: A,
// X, Y to zero, the Interrupt Disable flag set, both interrupt latches
// cleared, SP to the top of page 1, and PC loaded from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.Status = NewStatus()
	c.Status.Set(FlagInterruptDisable)
	c.nmi = false
	c.irq = false
	c.PC = c.readWord(vectorReset)
}

// TriggerNMI latches a non-maskable interrupt request. It is serviced at
// the start of the next Step and the latch is cleared by the core itself.
func (c *CPU) TriggerNMI() {
	c.nmi = true
}

// SetIRQLine sets the level of the maskable interrupt request line. The
// core does not clear this itself -- per §5 of the specification this
// core implements, the IRQ latch is level-triggered and is expected to be
// cleared by the host once the device's acknowledgement path is observed.
func (c *CPU) SetIRQLine(asserted bool) {
	c.irq = asserted
}

// IRQLine reports the current level of the maskable interrupt request
// line, primarily useful for tests and the debugger.
func (c *CPU) IRQLine() bool { return c.irq }

// push writes v to the top of the page-1 stack and decrements SP, with
// wraparound.
func (c *CPU) push(v byte) {
	c.Memory.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pull increments SP, with wraparound, and reads the byte now on top of
// the page-1 stack.
func (c *CPU) pull() byte {
	c.SP++
	return c.Memory.Read(0x0100 | uint16(c.SP))
}

// pushPC pushes a 16-bit PC high byte first, then low byte.
func (c *CPU) pushPC(pc uint16) {
	c.push(byte(pc >> 8))
	c.push(byte(pc))
}

// pullPC pulls a 16-bit PC low byte first, then high byte, and combines
// them.
func (c *CPU) pullPC() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}
