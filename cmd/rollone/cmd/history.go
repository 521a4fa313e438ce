package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/rollone/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded rolls",
	Long: `List the most recent replies recorded by 'rollone roll', newest first.

Example:
  rollone history
  rollone history --limit 3`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of rolls to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	w := cmd.OutOrStdout()
	path := e.cfg.HistoryPath(e.dir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(w, "No rolls recorded yet.")
		return nil
	}

	s, err := store.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No rolls recorded yet.")
		return nil
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("─", 40))
		}
		status := ""
		if !entry.OK {
			status = " (nothing rolled)"
		}
		fmt.Fprintf(w, "#%d  %s  %s%s\n\n", entry.ID, entry.CreatedAt.Local().Format("2006-01-02 15:04:05"), entry.Origin, status)
		fmt.Fprintln(w, strings.TrimRight(entry.Report, "\n"))
	}
	return nil
}
