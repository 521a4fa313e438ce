package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern> [file|-]",
	Short: "Print the first table whose header matches a pattern",
	Long: `Search the tables found in text for the first one whose header matches a
regular expression, ignoring case, and print it as JSON. Prints {} when no
table matches.

Example:
  rollone find weather tables.txt
  rollone find '^loot' < tables.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	text, origin, err := readInput(cmd, args[1:])
	if err != nil {
		return err
	}

	src := e.parser().ParseSource(origin, text)
	t, err := src.Find(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if t == nil {
		fmt.Fprintln(w, "{}")
		return nil
	}

	out, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
