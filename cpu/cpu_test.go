package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/mem"
)

func newTestCPU(reset uint16) (*CPU, *mem.BasicRam) {
	ram := mem.NewBasicRam()
	ram.Write(0xFFFC, byte(reset))
	ram.Write(0xFFFD, byte(reset>>8))
	return New(ram), ram
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.True(t, c.Status.Get(FlagInterruptDisable))
	assert.True(t, c.Status.Get(FlagReserved))
}

// TestMultiplyByRepeatedAddition steps a small program that multiplies 10
// by 3 through a CLC/ADC/DEY/BNE loop, asserting registers after every
// instruction the way a disassembler trace would. The program and
// expected register trace are carried over unchanged from the original
// CPU core this package is descended from; only the bugs that would have
// thrown off the trace (none of which this particular program happens to
// exercise) have been corrected elsewhere in the package.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, // LDX #$0A
		0x8E, 0x00, 0x00, // STX $0000
		0xA2, 0x03, // LDX #$03
		0x8E, 0x01, 0x00, // STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,             // CLC
		0x6D, 0x01, 0x00, // loop: ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE loop
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}
	c, ram := newTestCPU(0x8000)
	ram.Load(program, 0x8000)

	want := []struct {
		a, x, y byte
		next    string
	}{
		{0, 0x0A, 0, "STX"},
		{0, 0x0A, 0, "LDX"},
		{0, 3, 0, "STX"},
		{0, 3, 0, "LDY"},
		{0, 3, 0x0A, "LDA"},
		{0, 3, 0x0A, "CLC"},
		{0, 3, 0x0A, "ADC"},
		{3, 3, 0x0A, "DEY"},
		{3, 3, 9, "BNE"},
		{3, 3, 9, "ADC"},
		{6, 3, 9, "DEY"},
		{6, 3, 8, "BNE"},
		{6, 3, 8, "ADC"},
		{9, 3, 8, "DEY"},
		{9, 3, 7, "BNE"},
		{9, 3, 7, "ADC"},
		{12, 3, 7, "DEY"},
		{12, 3, 6, "BNE"},
		{12, 3, 6, "ADC"},
		{15, 3, 6, "DEY"},
		{15, 3, 5, "BNE"},
		{15, 3, 5, "ADC"},
		{18, 3, 5, "DEY"},
		{18, 3, 4, "BNE"},
		{18, 3, 4, "ADC"},
		{21, 3, 4, "DEY"},
		{21, 3, 3, "BNE"},
		{21, 3, 3, "ADC"},
		{24, 3, 3, "DEY"},
		{24, 3, 2, "BNE"},
		{24, 3, 2, "ADC"},
		{27, 3, 2, "DEY"},
		{27, 3, 1, "BNE"},
		{27, 3, 1, "ADC"},
		{30, 3, 1, "DEY"},
		{30, 3, 0, "BNE"},
		{30, 3, 0, "STA"},
		{30, 3, 0, "NOP"},
		{30, 3, 0, "NOP"},
		{30, 3, 0, "NOP"},
	}

	for _, w := range want {
		assert.NoError(t, c.Step())
		assert.Equal(t, w.a, c.A, "A after step toward %s", w.next)
		assert.Equal(t, w.x, c.X, "X after step toward %s", w.next)
		assert.Equal(t, w.y, c.Y, "Y after step toward %s", w.next)
		op, legal := decodeTable[ram.Read(c.PC)]
		assert.True(t, legal)
		assert.Equal(t, w.next, op.Name)
	}

	assert.Equal(t, byte(10), ram.Read(0x0000))
	assert.Equal(t, byte(3), ram.Read(0x0001))
	assert.Equal(t, byte(30), ram.Read(0x0002))
}

func TestDecimalAdd(t *testing.T) {
	c, ram := newTestCPU(0x8000)
	ram.Load([]byte{0xF8, 0x18, 0xA9, 0x58, 0x69, 0x46}, 0x8000) // SED; CLC; LDA #$58; ADC #$46
	for range 4 {
		assert.NoError(t, c.Step())
	}
	assert.Equal(t, byte(0x04), c.A)
	assert.True(t, c.Status.Get(FlagCarry))
}

func TestDecimalAddNoCarry(t *testing.T) {
	c, ram := newTestCPU(0x8000)
	ram.Load([]byte{0xF8, 0x18, 0xA9, 0x12, 0x69, 0x34}, 0x8000) // SED; CLC; LDA #$12; ADC #$34
	for range 4 {
		assert.NoError(t, c.Step())
	}
	assert.Equal(t, byte(0x46), c.A)
	assert.False(t, c.Status.Get(FlagCarry))
}

func TestSignedOverflowOnADC(t *testing.T) {
	c, ram := newTestCPU(0x8000)
	ram.Load([]byte{0x18, 0xA9, 0x50, 0x69, 0x50}, 0x8000) // CLC; LDA #$50; ADC #$50
	for range 3 {
		assert.NoError(t, c.Step())
	}
	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.Status.Get(FlagOverflow))
	assert.True(t, c.Status.Get(FlagNegative))
	assert.False(t, c.Status.Get(FlagCarry))
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, ram := newTestCPU(0x8000)
	ram.Load([]byte{0x6C, 0xFF, 0x30}, 0x8000) // JMP ($30FF)
	ram.Write(0x30FF, 0x80)
	ram.Write(0x3100, 0x12) // correct high byte, never read
	ram.Write(0x3000, 0x55) // buggy wraparound high byte, actually read
	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x5580), c.PC)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, ram := newTestCPU(0x0600)
	ram.Load([]byte{0x20, 0x05, 0x06, 0xA9, 0x2A, 0x60}, 0x0600) // JSR $0605; LDA #$2A; RTS
	initialSP := c.SP
	assert.NoError(t, c.Step()) // JSR
	assert.Equal(t, uint16(0x0605), c.PC)
	assert.NoError(t, c.Step()) // RTS at $0605
	assert.Equal(t, uint16(0x0603), c.PC)
	assert.Equal(t, initialSP, c.SP)
	assert.NoError(t, c.Step()) // LDA #$2A at $0603
	assert.Equal(t, byte(0x2A), c.A)
}

func TestBRKEntersInterruptVector(t *testing.T) {
	c, ram := newTestCPU(0x0600)
	ram.Load([]byte{0x00}, 0x0600) // BRK
	ram.Write(0xFFFE, 0x33)
	ram.Write(0xFFFF, 0x22)
	c.Status = NewStatus() // live status clear apart from Reserved
	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x2233), c.PC)
	assert.True(t, c.Status.Get(FlagInterruptDisable))
	assert.Equal(t, byte(0x06), ram.Read(0x01FF))
	assert.Equal(t, byte(0x01), ram.Read(0x01FE))
	assert.Equal(t, byte(0x30), ram.Read(0x01FD)) // Break|Reserved
}

func TestMultiByteAddViaCarryChain(t *testing.T) {
	c, ram := newTestCPU(0x8000)
	// 0x01FF + 0x0002 = 0x0201, computed as two 8-bit limbs with carry
	// propagation: lo 0xFF+0x02=0x01 with carry, hi 0x01+0x00+carry=0x02.
	ram.Load([]byte{
		0x18,             // CLC
		0xA9, 0xFF,       // LDA #$FF
		0x69, 0x02,       // ADC #$02
		0x8D, 0x10, 0x00, // STA $0010
		0xA9, 0x01,       // LDA #$01
		0x69, 0x00,       // ADC #$00
		0x8D, 0x11, 0x00, // STA $0011
	}, 0x8000)
	for range 7 {
		assert.NoError(t, c.Step())
	}
	assert.Equal(t, byte(0x01), ram.Read(0x0010))
	assert.Equal(t, byte(0x02), ram.Read(0x0011))
}
