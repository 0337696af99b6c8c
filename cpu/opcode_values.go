package cpu

// Bit-exact opcode byte values, one constant per mnemonic x addressing-mode
// pair, grouped by mnemonic. This is the single source of truth for both
// the decode table in opcodes.go and the asm package's encoder -- §6.2 of the
// specification this repository implements names these values exactly.
const (
	OpADCImm  byte = 0x69
	OpADCZP   byte = 0x65
	OpADCZPX  byte = 0x75
	OpADCAbs  byte = 0x6D
	OpADCAbsX byte = 0x7D
	OpADCAbsY byte = 0x79
	OpADCIzx  byte = 0x61
	OpADCIzy  byte = 0x71

	OpANDImm  byte = 0x29
	OpANDZP   byte = 0x25
	OpANDZPX  byte = 0x35
	OpANDAbs  byte = 0x2D
	OpANDAbsX byte = 0x3D
	OpANDAbsY byte = 0x39
	OpANDIzx  byte = 0x21
	OpANDIzy  byte = 0x31

	OpASLAcc  byte = 0x0A
	OpASLZP   byte = 0x06
	OpASLZPX  byte = 0x16
	OpASLAbs  byte = 0x0E
	OpASLAbsX byte = 0x1E

	OpBCC byte = 0x90
	OpBCS byte = 0xB0
	OpBEQ byte = 0xF0
	OpBNE byte = 0xD0
	OpBMI byte = 0x30
	OpBPL byte = 0x10
	OpBVC byte = 0x50
	OpBVS byte = 0x70

	OpBITZP  byte = 0x24
	OpBITAbs byte = 0x2C

	OpBRK byte = 0x00

	OpCLC byte = 0x18
	OpCLD byte = 0xD8
	OpCLI byte = 0x58
	OpCLV byte = 0xB8
	OpSEC byte = 0x38
	OpSED byte = 0xF8
	OpSEI byte = 0x78

	OpCMPImm  byte = 0xC9
	OpCMPZP   byte = 0xC5
	OpCMPZPX  byte = 0xD5
	OpCMPAbs  byte = 0xCD
	OpCMPAbsX byte = 0xDD
	OpCMPAbsY byte = 0xD9
	OpCMPIzx  byte = 0xC1
	OpCMPIzy  byte = 0xD1

	OpCPXImm byte = 0xE0
	OpCPXZP  byte = 0xE4
	OpCPXAbs byte = 0xEC

	OpCPYImm byte = 0xC0
	OpCPYZP  byte = 0xC4
	OpCPYAbs byte = 0xCC

	OpDECZP   byte = 0xC6
	OpDECZPX  byte = 0xD6
	OpDECAbs  byte = 0xCE
	OpDECAbsX byte = 0xDE
	OpDEX     byte = 0xCA
	OpDEY     byte = 0x88

	OpEORImm  byte = 0x49
	OpEORZP   byte = 0x45
	OpEORZPX  byte = 0x55
	OpEORAbs  byte = 0x4D
	OpEORAbsX byte = 0x5D
	OpEORAbsY byte = 0x59
	OpEORIzx  byte = 0x41
	OpEORIzy  byte = 0x51

	OpINCZP   byte = 0xE6
	OpINCZPX  byte = 0xF6
	OpINCAbs  byte = 0xEE
	OpINCAbsX byte = 0xFE
	OpINX     byte = 0xE8
	OpINY     byte = 0xC8

	OpJMPAbs byte = 0x4C
	OpJMPInd byte = 0x6C
	OpJSR    byte = 0x20
	OpRTS    byte = 0x60
	OpRTI    byte = 0x40

	OpLDAImm  byte = 0xA9
	OpLDAZP   byte = 0xA5
	OpLDAZPX  byte = 0xB5
	OpLDAAbs  byte = 0xAD
	OpLDAAbsX byte = 0xBD
	OpLDAAbsY byte = 0xB9
	OpLDAIzx  byte = 0xA1
	OpLDAIzy  byte = 0xB1

	OpLDXImm  byte = 0xA2
	OpLDXZP   byte = 0xA6
	OpLDXZPY  byte = 0xB6
	OpLDXAbs  byte = 0xAE
	OpLDXAbsY byte = 0xBE

	OpLDYImm  byte = 0xA0
	OpLDYZP   byte = 0xA4
	OpLDYZPX  byte = 0xB4
	OpLDYAbs  byte = 0xAC
	OpLDYAbsX byte = 0xBC

	OpLSRAcc  byte = 0x4A
	OpLSRZP   byte = 0x46
	OpLSRZPX  byte = 0x56
	OpLSRAbs  byte = 0x4E
	OpLSRAbsX byte = 0x5E

	OpNOP byte = 0xEA

	OpORAImm  byte = 0x09
	OpORAZP   byte = 0x05
	OpORAZPX  byte = 0x15
	OpORAAbs  byte = 0x0D
	OpORAAbsX byte = 0x1D
	OpORAAbsY byte = 0x19
	OpORAIzx  byte = 0x01
	OpORAIzy  byte = 0x11

	OpPHA byte = 0x48
	OpPHP byte = 0x08
	OpPLA byte = 0x68
	OpPLP byte = 0x28

	OpROLAcc  byte = 0x2A
	OpROLZP   byte = 0x26
	OpROLZPX  byte = 0x36
	OpROLAbs  byte = 0x2E
	OpROLAbsX byte = 0x3E

	OpRORAcc  byte = 0x6A
	OpRORZP   byte = 0x66
	OpRORZPX  byte = 0x76
	OpRORAbs  byte = 0x6E
	OpRORAbsX byte = 0x7E

	OpSBCImm  byte = 0xE9
	OpSBCZP   byte = 0xE5
	OpSBCZPX  byte = 0xF5
	OpSBCAbs  byte = 0xED
	OpSBCAbsX byte = 0xFD
	OpSBCAbsY byte = 0xF9
	OpSBCIzx  byte = 0xE1
	OpSBCIzy  byte = 0xF1

	OpSTAZP   byte = 0x85
	OpSTAZPX  byte = 0x95
	OpSTAAbs  byte = 0x8D
	OpSTAAbsX byte = 0x9D
	OpSTAAbsY byte = 0x99
	OpSTAIzx  byte = 0x81
	OpSTAIzy  byte = 0x91

	OpSTXZP  byte = 0x86
	OpSTXZPY byte = 0x96
	OpSTXAbs byte = 0x8E

	OpSTYZP  byte = 0x84
	OpSTYZPX byte = 0x94
	OpSTYAbs byte = 0x8C

	OpTAX byte = 0xAA
	OpTAY byte = 0xA8
	OpTSX byte = 0xBA
	OpTXA byte = 0x8A
	OpTXS byte = 0x9A
	OpTYA byte = 0x98
)
