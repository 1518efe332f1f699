package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/ianlancetaylor/demangle"
	"github.com/spf13/cobra"

	"github.com/sergeykhargelia/RISC-V-disassembler/internal/elfx"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/rvdis/config"
)

var (
	symAddrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	symKindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	symNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <input-elf>",
	Short: "List the symbol tables of an ELF image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dem, _ := cmd.Flags().GetBool("demangle")
		if !cmd.Flags().Changed("demangle") {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dem = cfg.Demangle
		}

		im, err := elfx.Open(args[0])
		if err != nil {
			return err
		}
		syms, err := im.Symbols()
		if err != nil {
			return err
		}
		for _, s := range syms {
			typ, err := elfx.TypeName(s.Info)
			if err != nil {
				return fmt.Errorf("symbol %d: %w", s.Index, err)
			}
			bind, err := elfx.BindName(s.Info)
			if err != nil {
				return fmt.Errorf("symbol %d: %w", s.Index, err)
			}
			name := s.Name
			if dem {
				name = cachedDemangle(name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				symAddrStyle.Render(fmt.Sprintf("%08x", s.Value)),
				symKindStyle.Render(fmt.Sprintf("%-8s %-8s", typ, bind)),
				symNameStyle.Render(name))
		}
		return nil
	},
}

// demangleCache avoids re-demangling repeated names. The command runs
// single-threaded, so a bare map suffices.
var demangleCache = map[string]string{}

func cachedDemangle(mangled string) string {
	if d, ok := demangleCache[mangled]; ok {
		return d
	}
	d := demangle.Filter(mangled, demangle.NoClones)
	demangleCache[mangled] = d
	return d
}

func init() {
	symbolsCmd.Flags().BoolP("demangle", "d", false, "demangle C++ symbol names")
	rootCmd.AddCommand(symbolsCmd)
}
