package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/rollone/internal/tables"
	"github.com/f3rmion/rollone/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file|-]",
	Short: "Roll on tables interactively",
	Long: `Launch an interactive roller for the tables found in text.

Pick a table with the arrow keys or j/k and press enter to roll it, or
press a to roll every table at once. Press y to copy the last report.

Example:
  rollone browse tables.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

var browseRecent int

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntVar(&browseRecent, "recent", 20, "number of recent rolls to remember")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	text, origin, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	src := e.parser().ParseSource(origin, text)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if len(args) == 0 || args[0] == "-" {
		// Stdin carried the tables; keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	var rng tables.Rand // nil rolls with the shared generator
	p := tea.NewProgram(tui.NewRoller(src, rng, browseRecent), opts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
