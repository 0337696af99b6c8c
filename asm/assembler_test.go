package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleImmediateAndZeroPage(t *testing.T) {
	out, err := Assemble(`
		LDA #$58
		STA $10
		ADC $10
	`)
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		0xA9, 0x58,
		0x85, 0x10,
		0x65, 0x10,
	}, out)
}

func TestAssembleAbsoluteWidensBeyondZeroPage(t *testing.T) {
	out, err := Assemble("LDA $1234")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xAD, 0x34, 0x12}, out)
}

func TestAssembleIndexedAndIndirectForms(t *testing.T) {
	out, err := Assemble(`
		LDA $20,X
		LDA $1000,Y
		LDA ($20,X)
		LDA ($20),Y
		JMP ($30FF)
	`)
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		0xB5, 0x20,
		0xB9, 0x00, 0x10,
		0xA1, 0x20,
		0xB1, 0x20,
		0x6C, 0xFF, 0x30,
	}, out)
}

func TestAssembleAccumulatorShift(t *testing.T) {
	out, err := Assemble("ASL A\nASL\nASL $08")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x0A, 0x06, 0x08}, out)
}

func TestAssembleImpliedInstructions(t *testing.T) {
	out, err := Assemble("CLC\nSEI\nTAX\nBRK\nRTS")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x18, 0x78, 0xAA, 0x00, 0x60}, out)
}

func TestAssembleBranchRelative(t *testing.T) {
	out, err := Assemble("BNE $FA")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xD0, 0xFA}, out)
}

func TestAssembleJSRAbsolute(t *testing.T) {
	out, err := Assemble("JSR $0605")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x05, 0x06}, out)
}

func TestAssembleBinaryAndDecimalLiterals(t *testing.T) {
	out, err := Assemble("LDX #%00001010\nLDY #10")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xA2, 0x0A, 0xA0, 0x0A}, out)
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	_, err := Assemble("FOO $10")
	assert.Error(t, err)
}

func TestAssembleImmediateOverflow(t *testing.T) {
	_, err := Assemble("LDA #$1FF")
	assert.Error(t, err)
}

func TestAssembleCaseInsensitiveMnemonicAndRegisters(t *testing.T) {
	out, err := Assemble("lda $20,x\nsta $21,X")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xB5, 0x20, 0x95, 0x21}, out)
}
