package cpu

// instrFunc is the shape of every instruction's execution body: given the
// Address its addressing mode resolved to, mutate the CPU accordingly.
type instrFunc func(c *CPU, addr Address)

// An Opcode is associated with a unique byte value (0x00-0xff). Only 151
// of the 256 possible values correspond to a documented instruction;
// Cycles is carried for a host that wants to throttle execution to
// original hardware speed (see RunRealTime), even though Step itself
// does not consult it.
type Opcode struct {
	Name   string
	Mode   AddressingMode
	Cycles byte
	Exec   instrFunc
}

// Decode looks up the Opcode a raw byte decodes to, for hosts (the
// debugger, disassembly tooling) that want to inspect an instruction
// before or without executing it. ok is false for the 105 byte values
// with no documented instruction.
func Decode(b byte) (op Opcode, ok bool) {
	op, ok = decodeTable[b]
	return op, ok
}

// decodeTable lists all 151 documented opcode byte values. Byte values
// absent from the map are illegal opcodes; Step reports them via
// DecodeError rather than guessing at undocumented behavior.
var decodeTable = map[byte]Opcode{
	OpADCImm:  {"ADC", Immediate, 2, (*CPU).ADC},
	OpADCZP:   {"ADC", ZeroPage, 3, (*CPU).ADC},
	OpADCZPX:  {"ADC", ZeroPageX, 4, (*CPU).ADC},
	OpADCAbs:  {"ADC", Absolute, 4, (*CPU).ADC},
	OpADCAbsX: {"ADC", AbsoluteX, 4, (*CPU).ADC},
	OpADCAbsY: {"ADC", AbsoluteY, 4, (*CPU).ADC},
	OpADCIzx:  {"ADC", IndexedIndirectX, 6, (*CPU).ADC},
	OpADCIzy:  {"ADC", IndirectIndexedY, 5, (*CPU).ADC},

	OpANDImm:  {"AND", Immediate, 2, (*CPU).AND},
	OpANDZP:   {"AND", ZeroPage, 3, (*CPU).AND},
	OpANDZPX:  {"AND", ZeroPageX, 4, (*CPU).AND},
	OpANDAbs:  {"AND", Absolute, 4, (*CPU).AND},
	OpANDAbsX: {"AND", AbsoluteX, 4, (*CPU).AND},
	OpANDAbsY: {"AND", AbsoluteY, 4, (*CPU).AND},
	OpANDIzx:  {"AND", IndexedIndirectX, 6, (*CPU).AND},
	OpANDIzy:  {"AND", IndirectIndexedY, 5, (*CPU).AND},

	OpASLAcc:  {"ASL", Accumulator, 2, (*CPU).ASL},
	OpASLZP:   {"ASL", ZeroPage, 5, (*CPU).ASL},
	OpASLZPX:  {"ASL", ZeroPageX, 6, (*CPU).ASL},
	OpASLAbs:  {"ASL", Absolute, 6, (*CPU).ASL},
	OpASLAbsX: {"ASL", AbsoluteX, 7, (*CPU).ASL},

	OpBCC: {"BCC", Relative, 2, (*CPU).BCC},
	OpBCS: {"BCS", Relative, 2, (*CPU).BCS},
	OpBEQ: {"BEQ", Relative, 2, (*CPU).BEQ},
	OpBNE: {"BNE", Relative, 2, (*CPU).BNE},
	OpBMI: {"BMI", Relative, 2, (*CPU).BMI},
	OpBPL: {"BPL", Relative, 2, (*CPU).BPL},
	OpBVC: {"BVC", Relative, 2, (*CPU).BVC},
	OpBVS: {"BVS", Relative, 2, (*CPU).BVS},

	OpBITZP:  {"BIT", ZeroPage, 3, (*CPU).BIT},
	OpBITAbs: {"BIT", Absolute, 4, (*CPU).BIT},

	OpBRK: {"BRK", Implied, 7, (*CPU).BRK},

	OpCLC: {"CLC", Implied, 2, (*CPU).CLC},
	OpCLD: {"CLD", Implied, 2, (*CPU).CLD},
	OpCLI: {"CLI", Implied, 2, (*CPU).CLI},
	OpCLV: {"CLV", Implied, 2, (*CPU).CLV},
	OpSEC: {"SEC", Implied, 2, (*CPU).SEC},
	OpSED: {"SED", Implied, 2, (*CPU).SED},
	OpSEI: {"SEI", Implied, 2, (*CPU).SEI},

	OpCMPImm:  {"CMP", Immediate, 2, (*CPU).CMP},
	OpCMPZP:   {"CMP", ZeroPage, 3, (*CPU).CMP},
	OpCMPZPX:  {"CMP", ZeroPageX, 4, (*CPU).CMP},
	OpCMPAbs:  {"CMP", Absolute, 4, (*CPU).CMP},
	OpCMPAbsX: {"CMP", AbsoluteX, 4, (*CPU).CMP},
	OpCMPAbsY: {"CMP", AbsoluteY, 4, (*CPU).CMP},
	OpCMPIzx:  {"CMP", IndexedIndirectX, 6, (*CPU).CMP},
	OpCMPIzy:  {"CMP", IndirectIndexedY, 5, (*CPU).CMP},

	OpCPXImm: {"CPX", Immediate, 2, (*CPU).CPX},
	OpCPXZP:  {"CPX", ZeroPage, 3, (*CPU).CPX},
	OpCPXAbs: {"CPX", Absolute, 4, (*CPU).CPX},

	OpCPYImm: {"CPY", Immediate, 2, (*CPU).CPY},
	OpCPYZP:  {"CPY", ZeroPage, 3, (*CPU).CPY},
	OpCPYAbs: {"CPY", Absolute, 4, (*CPU).CPY},

	OpDECZP:   {"DEC", ZeroPage, 5, (*CPU).DEC},
	OpDECZPX:  {"DEC", ZeroPageX, 6, (*CPU).DEC},
	OpDECAbs:  {"DEC", Absolute, 6, (*CPU).DEC},
	OpDECAbsX: {"DEC", AbsoluteX, 7, (*CPU).DEC},
	OpDEX:     {"DEX", Implied, 2, (*CPU).DEX},
	OpDEY:     {"DEY", Implied, 2, (*CPU).DEY},

	OpEORImm:  {"EOR", Immediate, 2, (*CPU).EOR},
	OpEORZP:   {"EOR", ZeroPage, 3, (*CPU).EOR},
	OpEORZPX:  {"EOR", ZeroPageX, 4, (*CPU).EOR},
	OpEORAbs:  {"EOR", Absolute, 4, (*CPU).EOR},
	OpEORAbsX: {"EOR", AbsoluteX, 4, (*CPU).EOR},
	OpEORAbsY: {"EOR", AbsoluteY, 4, (*CPU).EOR},
	OpEORIzx:  {"EOR", IndexedIndirectX, 6, (*CPU).EOR},
	OpEORIzy:  {"EOR", IndirectIndexedY, 5, (*CPU).EOR},

	OpINCZP:   {"INC", ZeroPage, 5, (*CPU).INC},
	OpINCZPX:  {"INC", ZeroPageX, 6, (*CPU).INC},
	OpINCAbs:  {"INC", Absolute, 6, (*CPU).INC},
	OpINCAbsX: {"INC", AbsoluteX, 7, (*CPU).INC},
	OpINX:     {"INX", Implied, 2, (*CPU).INX},
	OpINY:     {"INY", Implied, 2, (*CPU).INY},

	OpJMPAbs: {"JMP", Absolute, 3, (*CPU).JMP},
	OpJMPInd: {"JMP", Indirect, 5, (*CPU).JMP},
	OpJSR:    {"JSR", Absolute, 6, (*CPU).JSR},
	OpRTS:    {"RTS", Implied, 6, (*CPU).RTS},
	OpRTI:    {"RTI", Implied, 6, (*CPU).RTI},

	OpLDAImm:  {"LDA", Immediate, 2, (*CPU).LDA},
	OpLDAZP:   {"LDA", ZeroPage, 3, (*CPU).LDA},
	OpLDAZPX:  {"LDA", ZeroPageX, 4, (*CPU).LDA},
	OpLDAAbs:  {"LDA", Absolute, 4, (*CPU).LDA},
	OpLDAAbsX: {"LDA", AbsoluteX, 4, (*CPU).LDA},
	OpLDAAbsY: {"LDA", AbsoluteY, 4, (*CPU).LDA},
	OpLDAIzx:  {"LDA", IndexedIndirectX, 6, (*CPU).LDA},
	OpLDAIzy:  {"LDA", IndirectIndexedY, 5, (*CPU).LDA},

	OpLDXImm:  {"LDX", Immediate, 2, (*CPU).LDX},
	OpLDXZP:   {"LDX", ZeroPage, 3, (*CPU).LDX},
	OpLDXZPY:  {"LDX", ZeroPageY, 4, (*CPU).LDX},
	OpLDXAbs:  {"LDX", Absolute, 4, (*CPU).LDX},
	OpLDXAbsY: {"LDX", AbsoluteY, 4, (*CPU).LDX},

	OpLDYImm:  {"LDY", Immediate, 2, (*CPU).LDY},
	OpLDYZP:   {"LDY", ZeroPage, 3, (*CPU).LDY},
	OpLDYZPX:  {"LDY", ZeroPageX, 4, (*CPU).LDY},
	OpLDYAbs:  {"LDY", Absolute, 4, (*CPU).LDY},
	OpLDYAbsX: {"LDY", AbsoluteX, 4, (*CPU).LDY},

	OpLSRAcc:  {"LSR", Accumulator, 2, (*CPU).LSR},
	OpLSRZP:   {"LSR", ZeroPage, 5, (*CPU).LSR},
	OpLSRZPX:  {"LSR", ZeroPageX, 6, (*CPU).LSR},
	OpLSRAbs:  {"LSR", Absolute, 6, (*CPU).LSR},
	OpLSRAbsX: {"LSR", AbsoluteX, 7, (*CPU).LSR},

	OpNOP: {"NOP", Implied, 2, (*CPU).NOP},

	OpORAImm:  {"ORA", Immediate, 2, (*CPU).ORA},
	OpORAZP:   {"ORA", ZeroPage, 3, (*CPU).ORA},
	OpORAZPX:  {"ORA", ZeroPageX, 4, (*CPU).ORA},
	OpORAAbs:  {"ORA", Absolute, 4, (*CPU).ORA},
	OpORAAbsX: {"ORA", AbsoluteX, 4, (*CPU).ORA},
	OpORAAbsY: {"ORA", AbsoluteY, 4, (*CPU).ORA},
	OpORAIzx:  {"ORA", IndexedIndirectX, 6, (*CPU).ORA},
	OpORAIzy:  {"ORA", IndirectIndexedY, 5, (*CPU).ORA},

	OpPHA: {"PHA", Implied, 3, (*CPU).PHA},
	OpPHP: {"PHP", Implied, 3, (*CPU).PHP},
	OpPLA: {"PLA", Implied, 4, (*CPU).PLA},
	OpPLP: {"PLP", Implied, 4, (*CPU).PLP},

	OpROLAcc:  {"ROL", Accumulator, 2, (*CPU).ROL},
	OpROLZP:   {"ROL", ZeroPage, 5, (*CPU).ROL},
	OpROLZPX:  {"ROL", ZeroPageX, 6, (*CPU).ROL},
	OpROLAbs:  {"ROL", Absolute, 6, (*CPU).ROL},
	OpROLAbsX: {"ROL", AbsoluteX, 7, (*CPU).ROL},

	OpRORAcc:  {"ROR", Accumulator, 2, (*CPU).ROR},
	OpRORZP:   {"ROR", ZeroPage, 5, (*CPU).ROR},
	OpRORZPX:  {"ROR", ZeroPageX, 6, (*CPU).ROR},
	OpRORAbs:  {"ROR", Absolute, 6, (*CPU).ROR},
	OpRORAbsX: {"ROR", AbsoluteX, 7, (*CPU).ROR},

	OpSBCImm:  {"SBC", Immediate, 2, (*CPU).SBC},
	OpSBCZP:   {"SBC", ZeroPage, 3, (*CPU).SBC},
	OpSBCZPX:  {"SBC", ZeroPageX, 4, (*CPU).SBC},
	OpSBCAbs:  {"SBC", Absolute, 4, (*CPU).SBC},
	OpSBCAbsX: {"SBC", AbsoluteX, 4, (*CPU).SBC},
	OpSBCAbsY: {"SBC", AbsoluteY, 4, (*CPU).SBC},
	OpSBCIzx:  {"SBC", IndexedIndirectX, 6, (*CPU).SBC},
	OpSBCIzy:  {"SBC", IndirectIndexedY, 5, (*CPU).SBC},

	OpSTAZP:   {"STA", ZeroPage, 3, (*CPU).STA},
	OpSTAZPX:  {"STA", ZeroPageX, 4, (*CPU).STA},
	OpSTAAbs:  {"STA", Absolute, 4, (*CPU).STA},
	OpSTAAbsX: {"STA", AbsoluteX, 5, (*CPU).STA},
	OpSTAAbsY: {"STA", AbsoluteY, 5, (*CPU).STA},
	OpSTAIzx:  {"STA", IndexedIndirectX, 6, (*CPU).STA},
	OpSTAIzy:  {"STA", IndirectIndexedY, 6, (*CPU).STA},

	OpSTXZP:  {"STX", ZeroPage, 3, (*CPU).STX},
	OpSTXZPY: {"STX", ZeroPageY, 4, (*CPU).STX},
	OpSTXAbs: {"STX", Absolute, 4, (*CPU).STX},

	OpSTYZP:  {"STY", ZeroPage, 3, (*CPU).STY},
	OpSTYZPX: {"STY", ZeroPageX, 4, (*CPU).STY},
	OpSTYAbs: {"STY", Absolute, 4, (*CPU).STY},

	OpTAX: {"TAX", Implied, 2, (*CPU).TAX},
	OpTAY: {"TAY", Implied, 2, (*CPU).TAY},
	OpTSX: {"TSX", Implied, 2, (*CPU).TSX},
	OpTXA: {"TXA", Implied, 2, (*CPU).TXA},
	OpTXS: {"TXS", Implied, 2, (*CPU).TXS},
	OpTYA: {"TYA", Implied, 2, (*CPU).TYA},
}
