// Package cmd defines the rvdis command tree.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/sergeykhargelia/RISC-V-disassembler/internal/elfx"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/logging"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/report"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/rvdis/config"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/ui/colorize"
)

var rootCmd = &cobra.Command{
	Use:   "rvdis <input-elf> <output>",
	Short: "Disassemble an RV32IMC ELF image into a text report",
	Long: `rvdis reads a 32-bit little-endian ELF file containing RV32IM(+C)
machine code and writes a two-section report: the disassembled .text
listing followed by the formatted .symtab table.`,
	Example: `
# Disassemble into report.txt
rvdis firmware.elf report.txt

# Also show the report on the terminal
rvdis --print firmware.elf report.txt

# Emit a machine-readable summary for regression tests
rvdis --json firmware.elf report.txt
  `,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runDisassemble,
}

func runDisassemble(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		os.Setenv("RVDIS_NO_COLOR", "1")
	}

	lg := logging.NewLogger()
	defer lg.Close()

	im, err := elfx.Open(args[0])
	if err != nil {
		return err
	}
	sum, err := report.WriteFile(args[1], im)
	if err != nil {
		return err
	}
	lg.Debug("report written",
		"input", args[0],
		"output", args[1],
		"instructions", sum.Instructions,
		"unknown", sum.Unknown,
		"symbols", sum.Symbols)

	if show, _ := cmd.Flags().GetBool("print"); show {
		if err := printReport(args[1]); err != nil {
			return err
		}
	}
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return json.NewEncoder(os.Stdout).Encode(sum)
	}
	return nil
}

// printReport mirrors the written report to stdout, colorized when stdout is
// a terminal.
func printReport(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reread report: %w", err)
	}
	out := string(data)
	if term.IsTerminal(os.Stdout.Fd()) {
		if colored, err := colorize.Listing(out); err == nil {
			out = colored
		}
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func init() {
	rootCmd.Flags().Bool("json", false, "print a machine-readable summary to stdout")
	rootCmd.Flags().Bool("print", false, "mirror the report to stdout")
}

func Execute() {
	// fang renders help and errors with terminal styling; bypass it when
	// output is piped so the report and --json stay machine-readable.
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
