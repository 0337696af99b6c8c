// Command sixfiveohtwo assembles and runs 6502 programs against the
// emulator core: "asm" turns mnemonic source into a raw binary, "run"
// loads a binary and either drives it headlessly or drops into the
// interactive debugger.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sixfiveohtwo/asm"
	"sixfiveohtwo/cpu"
	"sixfiveohtwo/debugger"
	"sixfiveohtwo/mem"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sixfiveohtwo",
		Short: "MOS 6502 emulator core: assemble and run 6502 programs",
	}

	var loadAddrStr, resetVectorStr string
	var headless bool

	runCmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Load a raw binary and run it, interactively or headless",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			loadAddr, err := parseU16(loadAddrStr)
			if err != nil {
				return fmt.Errorf("--load-addr: %w", err)
			}
			resetVector := loadAddr
			if resetVectorStr != "" {
				resetVector, err = parseU16(resetVectorStr)
				if err != nil {
					return fmt.Errorf("--reset-vector: %w", err)
				}
			}

			m := mem.NewPeripheralMemoryFromBinary(program, loadAddr)
			m.Write(0xFFFC, byte(resetVector))
			m.Write(0xFFFD, byte(resetVector>>8))

			c := cpu.New(m)
			c.Reset()

			if headless {
				if err := c.RunRealTime(); err != nil {
					return fmt.Errorf("halted: %w", err)
				}
				return nil
			}
			return debugger.Run(c)
		},
	}
	runCmd.Flags().StringVar(&loadAddrStr, "load-addr", "0x8000", "address to load the program at")
	runCmd.Flags().StringVar(&resetVectorStr, "reset-vector", "", "reset vector override (defaults to --load-addr)")
	runCmd.Flags().BoolVar(&headless, "headless", false, "run without the interactive debugger, at real-time speed, until halted")

	var outPath string

	asmCmd := &cobra.Command{
		Use:   "asm <source>",
		Short: "Assemble mnemonic source into a raw binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			out, err := asm.Assemble(string(source))
			if err != nil {
				return fmt.Errorf("assembling %s: %w", args[0], err)
			}

			if outPath == "" {
				outPath = strings.TrimSuffix(args[0], filepathExt(args[0])) + ".bin"
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Printf("wrote %d bytes to %s\n", len(out), outPath)
			return nil
		},
	}
	asmCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file path (defaults to <source> with .bin extension)")

	rootCmd.AddCommand(runCmd, asmCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseU16 accepts both "0x8000" and bare "8000" hex forms.
func parseU16(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func filepathExt(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i:]
	}
	return ""
}
