package cpu

import "fmt"

// DecodeError is the core's one fatal condition: an opcode byte with no
// entry in the decode table. It carries enough context (the byte and the
// PC it was fetched from) for a caller to render a diagnostic.
type DecodeError struct {
	Opcode byte
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("illegal opcode %#02x at PC %#04x", e.Opcode, e.PC)
}

// Logger receives diagnostic notices from a CPU: decode aborts and
// serviced interrupts. A CPU built by New uses a no-op Logger, so
// embedding the core never requires configuring one.
type Logger interface {
	Logf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Logf(string, ...any) {}
