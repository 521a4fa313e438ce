package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/f3rmion/rollone/internal/config"
	"github.com/f3rmion/rollone/internal/report"
	"github.com/f3rmion/rollone/internal/store"
	"github.com/f3rmion/rollone/internal/tables"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rollCmd = &cobra.Command{
	Use:   "roll [file|-]",
	Short: "Roll on every table found in text",
	Long: `Roll once on every table found in text and print the reply.

The reply is shortened to the configured maximum length and, unless
history is disabled, recorded in the history database.

Example:
  rollone roll loot.txt
  echo "d4 1 north 2 east 3 south 4 west" | rollone roll --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoll,
}

var (
	rollSeed      uint64
	rollMaxLength int
	rollNoHistory bool
)

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Uint64Var(&rollSeed, "seed", 0, "seed the dice for a repeatable roll")
	rollCmd.Flags().IntVar(&rollMaxLength, "max-length", -1, "longest reply in bytes, 0 for no limit (default from config)")
	rollCmd.Flags().BoolVar(&rollNoHistory, "no-history", false, "do not record this roll")
}

func runRoll(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	text, origin, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var rng tables.Rand
	if cmd.Flags().Changed("seed") {
		rng = tables.NewRand(rollSeed)
	}

	req := report.NewRequest(origin)
	if !req.Add(e.parser().ParseSource(origin, text)) {
		e.logger.Info("no tables found", zap.String("origin", req.String()))
	}

	opts := report.Options{MaxLength: e.cfg.MaxReplyLength, Footer: e.cfg.Footer}
	if rollMaxLength >= 0 {
		opts.MaxLength = rollMaxLength
	}
	reply := report.Compose(req.Roll(rng), opts)
	if reply.Truncated {
		e.logger.Warn("reply shortened", zap.Int("max_length", opts.MaxLength))
	}

	fmt.Fprint(cmd.OutOrStdout(), reply.Text)

	if e.cfg.History.Enabled && !rollNoHistory {
		if err := recordReply(cmd.Context(), e, origin, reply); err != nil {
			e.logger.Warn("could not record roll", zap.Error(err))
		}
	}
	return nil
}

// recordReply stores reply and prunes the history to the configured limit.
func recordReply(ctx context.Context, e *env, origin tables.Origin, reply report.Reply) error {
	path := e.cfg.HistoryPath(e.dir)
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	s, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Record(ctx, store.Entry{
		Origin: origin.Description,
		Report: reply.Text,
		OK:     reply.OK,
	})
	if err != nil {
		return err
	}

	if e.cfg.History.Limit > 0 {
		pruned, err := s.Prune(ctx, e.cfg.History.Limit)
		if err != nil {
			return err
		}
		e.logger.Debug("roll recorded", zap.Int64("id", id), zap.Int64("pruned", pruned))
	}
	return nil
}
