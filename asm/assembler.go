package asm

import "fmt"

// Assemble turns mnemonic source text into a flat byte stream, one
// instruction after another with no padding or alignment. Each line is
// "MNEMONIC operand", operand omitted for Implied/Accumulator forms.
func Assemble(source string) ([]byte, error) {
	lines, err := parseLines(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var out []byte
	for _, line := range lines {
		b, err := encode(line)
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		out = append(out, b...)
	}
	return out, nil
}
