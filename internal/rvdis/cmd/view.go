package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/sergeykhargelia/RISC-V-disassembler/internal/elfx"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/report"
)

var (
	viewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	viewFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type viewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newViewModel(title, content string) viewModel {
	return viewModel{
		title:    title,
		content:  content,
		viewport: viewport.New(),
	}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 2)
		if !m.ready {
			m.viewport.SetContent(m.content)
			m.ready = true
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	footer := viewFooterStyle.Render(fmt.Sprintf("%3.0f%%  q to quit", m.viewport.ScrollPercent()*100))
	return viewTitleStyle.Render(m.title) + "\n" + m.viewport.View() + "\n" + footer
}

var viewCmd = &cobra.Command{
	Use:   "view <input-elf>",
	Short: "Disassemble and browse the report interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		im, err := elfx.Open(args[0])
		if err != nil {
			return err
		}
		var buf strings.Builder
		if _, err := report.Write(&buf, im); err != nil {
			return err
		}
		program := tea.NewProgram(
			newViewModel(args[0], buf.String()),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
