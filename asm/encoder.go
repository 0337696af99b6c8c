package asm

import (
	"fmt"

	"sixfiveohtwo/cpu"
)

// mnemonicOpcodes maps every mnemonic this assembler supports to the
// opcode byte it takes for each addressing mode it can use. It mirrors
// cpu's decode table in reverse, built from the same opcode constants so
// the two can never drift out of sync.
var mnemonicOpcodes = map[string]map[cpu.AddressingMode]byte{
	"ADC": {cpu.Immediate: cpu.OpADCImm, cpu.ZeroPage: cpu.OpADCZP, cpu.ZeroPageX: cpu.OpADCZPX, cpu.Absolute: cpu.OpADCAbs, cpu.AbsoluteX: cpu.OpADCAbsX, cpu.AbsoluteY: cpu.OpADCAbsY, cpu.IndexedIndirectX: cpu.OpADCIzx, cpu.IndirectIndexedY: cpu.OpADCIzy},
	"AND": {cpu.Immediate: cpu.OpANDImm, cpu.ZeroPage: cpu.OpANDZP, cpu.ZeroPageX: cpu.OpANDZPX, cpu.Absolute: cpu.OpANDAbs, cpu.AbsoluteX: cpu.OpANDAbsX, cpu.AbsoluteY: cpu.OpANDAbsY, cpu.IndexedIndirectX: cpu.OpANDIzx, cpu.IndirectIndexedY: cpu.OpANDIzy},
	"ASL": {cpu.Accumulator: cpu.OpASLAcc, cpu.ZeroPage: cpu.OpASLZP, cpu.ZeroPageX: cpu.OpASLZPX, cpu.Absolute: cpu.OpASLAbs, cpu.AbsoluteX: cpu.OpASLAbsX},

	"BCC": {cpu.Relative: cpu.OpBCC},
	"BCS": {cpu.Relative: cpu.OpBCS},
	"BEQ": {cpu.Relative: cpu.OpBEQ},
	"BNE": {cpu.Relative: cpu.OpBNE},
	"BMI": {cpu.Relative: cpu.OpBMI},
	"BPL": {cpu.Relative: cpu.OpBPL},
	"BVC": {cpu.Relative: cpu.OpBVC},
	"BVS": {cpu.Relative: cpu.OpBVS},

	"BIT": {cpu.ZeroPage: cpu.OpBITZP, cpu.Absolute: cpu.OpBITAbs},
	"BRK": {cpu.Implied: cpu.OpBRK},

	"CLC": {cpu.Implied: cpu.OpCLC},
	"CLD": {cpu.Implied: cpu.OpCLD},
	"CLI": {cpu.Implied: cpu.OpCLI},
	"CLV": {cpu.Implied: cpu.OpCLV},
	"SEC": {cpu.Implied: cpu.OpSEC},
	"SED": {cpu.Implied: cpu.OpSED},
	"SEI": {cpu.Implied: cpu.OpSEI},

	"CMP": {cpu.Immediate: cpu.OpCMPImm, cpu.ZeroPage: cpu.OpCMPZP, cpu.ZeroPageX: cpu.OpCMPZPX, cpu.Absolute: cpu.OpCMPAbs, cpu.AbsoluteX: cpu.OpCMPAbsX, cpu.AbsoluteY: cpu.OpCMPAbsY, cpu.IndexedIndirectX: cpu.OpCMPIzx, cpu.IndirectIndexedY: cpu.OpCMPIzy},
	"CPX": {cpu.Immediate: cpu.OpCPXImm, cpu.ZeroPage: cpu.OpCPXZP, cpu.Absolute: cpu.OpCPXAbs},
	"CPY": {cpu.Immediate: cpu.OpCPYImm, cpu.ZeroPage: cpu.OpCPYZP, cpu.Absolute: cpu.OpCPYAbs},

	"DEC": {cpu.ZeroPage: cpu.OpDECZP, cpu.ZeroPageX: cpu.OpDECZPX, cpu.Absolute: cpu.OpDECAbs, cpu.AbsoluteX: cpu.OpDECAbsX},
	"DEX": {cpu.Implied: cpu.OpDEX},
	"DEY": {cpu.Implied: cpu.OpDEY},

	"EOR": {cpu.Immediate: cpu.OpEORImm, cpu.ZeroPage: cpu.OpEORZP, cpu.ZeroPageX: cpu.OpEORZPX, cpu.Absolute: cpu.OpEORAbs, cpu.AbsoluteX: cpu.OpEORAbsX, cpu.AbsoluteY: cpu.OpEORAbsY, cpu.IndexedIndirectX: cpu.OpEORIzx, cpu.IndirectIndexedY: cpu.OpEORIzy},

	"INC": {cpu.ZeroPage: cpu.OpINCZP, cpu.ZeroPageX: cpu.OpINCZPX, cpu.Absolute: cpu.OpINCAbs, cpu.AbsoluteX: cpu.OpINCAbsX},
	"INX": {cpu.Implied: cpu.OpINX},
	"INY": {cpu.Implied: cpu.OpINY},

	"JMP": {cpu.Absolute: cpu.OpJMPAbs, cpu.Indirect: cpu.OpJMPInd},
	"JSR": {cpu.Absolute: cpu.OpJSR},
	"RTS": {cpu.Implied: cpu.OpRTS},
	"RTI": {cpu.Implied: cpu.OpRTI},

	"LDA": {cpu.Immediate: cpu.OpLDAImm, cpu.ZeroPage: cpu.OpLDAZP, cpu.ZeroPageX: cpu.OpLDAZPX, cpu.Absolute: cpu.OpLDAAbs, cpu.AbsoluteX: cpu.OpLDAAbsX, cpu.AbsoluteY: cpu.OpLDAAbsY, cpu.IndexedIndirectX: cpu.OpLDAIzx, cpu.IndirectIndexedY: cpu.OpLDAIzy},
	"LDX": {cpu.Immediate: cpu.OpLDXImm, cpu.ZeroPage: cpu.OpLDXZP, cpu.ZeroPageY: cpu.OpLDXZPY, cpu.Absolute: cpu.OpLDXAbs, cpu.AbsoluteY: cpu.OpLDXAbsY},
	"LDY": {cpu.Immediate: cpu.OpLDYImm, cpu.ZeroPage: cpu.OpLDYZP, cpu.ZeroPageX: cpu.OpLDYZPX, cpu.Absolute: cpu.OpLDYAbs, cpu.AbsoluteX: cpu.OpLDYAbsX},

	"LSR": {cpu.Accumulator: cpu.OpLSRAcc, cpu.ZeroPage: cpu.OpLSRZP, cpu.ZeroPageX: cpu.OpLSRZPX, cpu.Absolute: cpu.OpLSRAbs, cpu.AbsoluteX: cpu.OpLSRAbsX},

	"NOP": {cpu.Implied: cpu.OpNOP},

	"ORA": {cpu.Immediate: cpu.OpORAImm, cpu.ZeroPage: cpu.OpORAZP, cpu.ZeroPageX: cpu.OpORAZPX, cpu.Absolute: cpu.OpORAAbs, cpu.AbsoluteX: cpu.OpORAAbsX, cpu.AbsoluteY: cpu.OpORAAbsY, cpu.IndexedIndirectX: cpu.OpORAIzx, cpu.IndirectIndexedY: cpu.OpORAIzy},

	"PHA": {cpu.Implied: cpu.OpPHA},
	"PHP": {cpu.Implied: cpu.OpPHP},
	"PLA": {cpu.Implied: cpu.OpPLA},
	"PLP": {cpu.Implied: cpu.OpPLP},

	"ROL": {cpu.Accumulator: cpu.OpROLAcc, cpu.ZeroPage: cpu.OpROLZP, cpu.ZeroPageX: cpu.OpROLZPX, cpu.Absolute: cpu.OpROLAbs, cpu.AbsoluteX: cpu.OpROLAbsX},
	"ROR": {cpu.Accumulator: cpu.OpRORAcc, cpu.ZeroPage: cpu.OpRORZP, cpu.ZeroPageX: cpu.OpRORZPX, cpu.Absolute: cpu.OpRORAbs, cpu.AbsoluteX: cpu.OpRORAbsX},

	"SBC": {cpu.Immediate: cpu.OpSBCImm, cpu.ZeroPage: cpu.OpSBCZP, cpu.ZeroPageX: cpu.OpSBCZPX, cpu.Absolute: cpu.OpSBCAbs, cpu.AbsoluteX: cpu.OpSBCAbsX, cpu.AbsoluteY: cpu.OpSBCAbsY, cpu.IndexedIndirectX: cpu.OpSBCIzx, cpu.IndirectIndexedY: cpu.OpSBCIzy},

	"STA": {cpu.ZeroPage: cpu.OpSTAZP, cpu.ZeroPageX: cpu.OpSTAZPX, cpu.Absolute: cpu.OpSTAAbs, cpu.AbsoluteX: cpu.OpSTAAbsX, cpu.AbsoluteY: cpu.OpSTAAbsY, cpu.IndexedIndirectX: cpu.OpSTAIzx, cpu.IndirectIndexedY: cpu.OpSTAIzy},
	"STX": {cpu.ZeroPage: cpu.OpSTXZP, cpu.ZeroPageY: cpu.OpSTXZPY, cpu.Absolute: cpu.OpSTXAbs},
	"STY": {cpu.ZeroPage: cpu.OpSTYZP, cpu.ZeroPageX: cpu.OpSTYZPX, cpu.Absolute: cpu.OpSTYAbs},

	"TAX": {cpu.Implied: cpu.OpTAX},
	"TAY": {cpu.Implied: cpu.OpTAY},
	"TSX": {cpu.Implied: cpu.OpTSX},
	"TXA": {cpu.Implied: cpu.OpTXA},
	"TXS": {cpu.Implied: cpu.OpTXS},
	"TYA": {cpu.Implied: cpu.OpTYA},
}

// encode picks the concrete addressing mode a parsed operand implies for
// a given mnemonic and renders the instruction to bytes. There is no
// forward-reference resolution: Relative operands are taken as a
// literal signed displacement byte, not computed from a label.
func encode(line parsedLine) ([]byte, error) {
	modes, ok := mnemonicOpcodes[line.mnemonic]
	if !ok {
		return nil, fmt.Errorf("line %d: unknown mnemonic %q", line.line, line.mnemonic)
	}

	candidates, err := candidateModes(line.operand)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line.line, err)
	}

	for _, mode := range candidates {
		op, ok := modes[mode]
		if !ok {
			continue
		}
		return append([]byte{op}, operandBytes(mode, line.operand.value)...), nil
	}
	return nil, fmt.Errorf("line %d: %s has no addressing mode matching this operand", line.line, line.mnemonic)
}

// candidateModes orders the addressing modes worth trying for a parsed
// operand, most specific first. Multiple entries handle the cases that
// are genuinely ambiguous until the mnemonic's supported modes are
// known: a bare operand could be Implied or Accumulator, and a
// single-byte numeric operand could be ZeroPage, Relative, or (if it
// doesn't fit a byte) Absolute.
func candidateModes(o parsedOperand) ([]cpu.AddressingMode, error) {
	switch o.kind {
	case none:
		return []cpu.AddressingMode{cpu.Implied, cpu.Accumulator}, nil
	case accumulator:
		return []cpu.AddressingMode{cpu.Accumulator}, nil
	case immediate:
		if o.value > 0xFF {
			return nil, fmt.Errorf("immediate operand %#x does not fit a byte", o.value)
		}
		return []cpu.AddressingMode{cpu.Immediate}, nil
	case absoluteOrZeroPage:
		if o.value <= 0xFF {
			return []cpu.AddressingMode{cpu.ZeroPage, cpu.Relative, cpu.Absolute}, nil
		}
		return []cpu.AddressingMode{cpu.Absolute}, nil
	case absoluteOrZeroPageX:
		if o.value <= 0xFF {
			return []cpu.AddressingMode{cpu.ZeroPageX, cpu.AbsoluteX}, nil
		}
		return []cpu.AddressingMode{cpu.AbsoluteX}, nil
	case absoluteOrZeroPageY:
		if o.value <= 0xFF {
			return []cpu.AddressingMode{cpu.ZeroPageY, cpu.AbsoluteY}, nil
		}
		return []cpu.AddressingMode{cpu.AbsoluteY}, nil
	case indirect:
		return []cpu.AddressingMode{cpu.Indirect}, nil
	case indexedIndirectX:
		return []cpu.AddressingMode{cpu.IndexedIndirectX}, nil
	case indirectIndexedY:
		return []cpu.AddressingMode{cpu.IndirectIndexedY}, nil
	}
	return nil, fmt.Errorf("unrecognized operand shape")
}

// operandBytes renders the instruction's trailing bytes: one byte for
// every single-byte-operand mode, two little-endian bytes for the
// 16-bit ones, none for Implied/Accumulator.
func operandBytes(mode cpu.AddressingMode, value uint32) []byte {
	switch mode {
	case cpu.Implied, cpu.Accumulator:
		return nil
	case cpu.Absolute, cpu.AbsoluteX, cpu.AbsoluteY, cpu.Indirect:
		return []byte{byte(value), byte(value >> 8)}
	default:
		return []byte{byte(value)}
	}
}
