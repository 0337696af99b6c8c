// Package debugger is a small interactive TUI for stepping or running a
// loaded program against a cpu.CPU, showing registers, flags, a window of
// the stack, and a page-table view of memory around the program counter.
package debugger

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixfiveohtwo/cpu"
)

// Mode selects whether the debugger waits for a keypress between
// instructions or steps continuously on a timer.
type Mode int

const (
	// Step waits for "j" or space before executing the next instruction.
	Step Mode = iota
	// Run steps continuously, paced by cpu.Tick.
	Run
)

func (m Mode) String() string {
	if m == Run {
		return "run"
	}
	return "step"
}

var statusFlags = []cpu.Flag{
	cpu.FlagNegative, cpu.FlagOverflow, cpu.FlagReserved, cpu.FlagBreak,
	cpu.FlagDecimal, cpu.FlagInterruptDisable, cpu.FlagZero, cpu.FlagCarry,
}

type tickMsg time.Time

type model struct {
	cpu    *cpu.CPU
	mode   Mode
	prevPC uint16
	err    error
	done   bool
}

// Init starts the model with no pending command; the first instruction
// only executes once the user steps or switches to Run mode.
func (m model) Init() tea.Cmd {
	return nil
}

func (m model) step() (model, tea.Cmd) {
	m.prevPC = m.cpu.PC
	if err := m.cpu.Step(); err != nil {
		m.err = err
		m.done = true
		return m, tea.Quit
	}
	if m.mode == Run {
		return m, tickCmd()
	}
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(cpu.Tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.mode != Run || m.done {
			return m, nil
		}
		return m.step()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "m":
			if m.mode == Step {
				m.mode = Run
				return m, tickCmd()
			}
			m.mode = Step
			return m, nil
		case " ", "j":
			if m.mode == Step && !m.done {
				return m.step()
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Memory.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

// pageTable renders the first few zero-page rows plus a window of pages
// around the current PC, so both fixed zero-page state and the running
// program's neighborhood are visible at once.
func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}

	pcPage := m.cpu.PC &^ 0x0F
	offsets := []uint16{0, 16, 32, 48, pcPage - 16, pcPage, pcPage + 16}
	seen := map[uint16]bool{}
	for _, start := range offsets {
		if seen[start] {
			continue
		}
		seen[start] = true
		rows = append(rows, m.renderPage(start))
	}
	return strings.Join(rows, "\n")
}

// status renders PC, the previous PC, registers, and the status flags.
func (m model) status() string {
	var flags string
	for _, f := range statusFlags {
		if m.cpu.Status.Get(f) {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
mode: %s
  PC: %04x (was %04x)
  SP: %02x
   A: %02x
   X: %02x
   Y: %02x
N V _ B D I Z C
%s
`, m.mode, m.cpu.PC, m.prevPC, m.cpu.SP, m.cpu.A, m.cpu.X, m.cpu.Y, flags)
}

// stackWindow renders the 8 stack bytes nearest the current SP.
func (m model) stackWindow() string {
	lines := []string{"sp | value"}
	top := int(m.cpu.SP)
	for i := top + 4; i >= top-3 && len(lines) <= 8; i-- {
		if i < 0 || i > 0xFF {
			continue
		}
		sp := byte(i)
		lines = append(lines, fmt.Sprintf("%02x | %02x", sp, m.cpu.Memory.Read(0x0100+uint16(sp))))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("halted: %v\n", m.err)
	}

	next, _ := cpu.Decode(m.cpu.Memory.Read(m.cpu.PC))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
			m.stackWindow(),
		),
		"",
		spew.Sdump(next),
		"j/space: step    m: toggle run/step    q: quit",
	)
}

// Run starts the interactive debugger against c, which must already have
// its program counter pointed at the code to run (typically via
// c.Reset() against a reset vector written into memory beforehand). It
// blocks until the user quits or the CPU hits an illegal opcode.
func Run(c *cpu.CPU) error {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if fin, ok := m.(model); ok && fin.err != nil {
		return fin.err
	}
	return nil
}
